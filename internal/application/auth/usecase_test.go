package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tiendas-api/internal/application/auth"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter, _ repository.UserSort) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Name)) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "tiendas-test",
	})
}

var validRegister = dto.RegisterRequest{
	Name:     "Twenty Character Name!!",
	Email:    "a@b.com",
	Password: "Abcdef1!",
	Address:  "123 St",
}

func TestRegister_CreaUsuarioConRolUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(context.Background(), validRegister)
	require.NoError(t, err)
	assert.Equal(t, "user", out.Role, "el registro público siempre asigna rol user")
	assert.Equal(t, validRegister.Email, out.Email)
	assert.NotEmpty(t, out.ID)

	// El password nunca se guarda en claro ni viaja en la respuesta.
	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, validRegister.Password, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(validRegister.Password)))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), validRegister)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegister)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_ValidacionPorCampo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	in := validRegister
	in.Name = "Corto"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, account.ErrValidation)

	in = validRegister
	in.Password = "sinmayuscula1!"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, account.ErrValidation)
}

// Login con email desconocido y con password incorrecto devuelven el mismo
// error: no se puede distinguir si la cuenta existe.
func TestLogin_CredencialesInvalidasSinEnumeracion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.Register(context.Background(), validRegister)
	require.NoError(t, err)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.com", Password: "Abcdef1!"})
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Email: validRegister.Email, Password: "Incorrecta1!"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "ambos fallos deben ser indistinguibles")
}

func TestLogin_EmiteTokenYUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.Register(context.Background(), validRegister)
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: validRegister.Email, Password: validRegister.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, validRegister.Email, out.User.Email)
	assert.Equal(t, "user", out.User.Role)
}

func TestChangePassword_FlujoCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	created, err := uc.Register(context.Background(), validRegister)
	require.NoError(t, err)

	// Contraseña actual incorrecta
	err = uc.ChangePassword(context.Background(), created.ID, dto.ChangePasswordRequest{
		OldPassword: "Incorrecta1!", NewPassword: "Nueva@Clave1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Nueva contraseña que no cumple la política
	err = uc.ChangePassword(context.Background(), created.ID, dto.ChangePasswordRequest{
		OldPassword: validRegister.Password, NewPassword: "corta",
	})
	assert.ErrorIs(t, err, account.ErrValidation)

	// Cambio válido: el login funciona con la nueva y falla con la vieja
	err = uc.ChangePassword(context.Background(), created.ID, dto.ChangePasswordRequest{
		OldPassword: validRegister.Password, NewPassword: "Nueva@Clave1",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: validRegister.Email, Password: "Nueva@Clave1"})
	assert.NoError(t, err)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: validRegister.Email, Password: validRegister.Password})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
