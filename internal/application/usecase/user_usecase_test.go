package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// fakeUserRepo replica las unicidades de la tabla users: email y documento
// (national_id) únicos, con el documento vacío fuera del constraint.
type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) uniqueViolated(u *entity.User) error {
	for _, other := range r.users {
		if other.ID == u.ID {
			continue
		}
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if u.NationalID != "" && other.NationalID == u.NationalID {
			return domain.ErrNationalIDExists
		}
	}
	return nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if err := r.uniqueViolated(u); err != nil {
		return err
	}
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if err := r.uniqueViolated(u); err != nil {
		return err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_DocumentoDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.com", NationalID: "12345678",
		Password: "secreta1", Role: entity.RoleOperator,
	})
	require.NoError(t, err)

	// Mismo documento con otro email: choca contra la unicidad del documento.
	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Bruno", Email: "bruno@almacen.com", NationalID: "12345678",
		Password: "secreta2", Role: entity.RoleOperator,
	})
	assert.ErrorIs(t, err, domain.ErrNationalIDExists)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.com", NationalID: "12345678",
		Password: "secreta1", Role: entity.RoleOperator,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Otra Ana", Email: "ana@almacen.com", NationalID: "87654321",
		Password: "secreta2", Role: entity.RoleOperator,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_DocumentoDeOtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.com", NationalID: "12345678",
		Password: "secreta1", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Bruno", Email: "bruno@almacen.com", NationalID: "87654321",
		Password: "secreta2", Role: entity.RoleOperator,
	})
	require.NoError(t, err)

	taken := "12345678"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateUserRequest{NationalID: &taken})
	assert.ErrorIs(t, err, domain.ErrNationalIDExists)
}
