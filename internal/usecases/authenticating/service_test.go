package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shakemap/shakemap-api/infrastructure/repository/mocks"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(mockUserRepo, cfg).(*Service), mockUserRepo
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Cria usuário com senha criptografada e papel padrão", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(nil, nil)

		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "maria@example.com", user.Email)
				assert.Equal(t, domain.RoleUser, user.RoleID)
				assert.True(t, user.Active)

				// A senha nunca pode ser persistida em claro
				assert.NotEqual(t, "Segura123", user.PasswordHash)
				err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Segura123"))
				assert.NoError(t, err)

				user.ID = 42
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Email:        " Maria@Example.com ",
			PasswordHash: "Segura123",
		})

		require.NoError(t, err)
		assert.Equal(t, 42, user.ID)
	})

	t.Run("Rejeita cadastro sem campos obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Name: "Maria"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Rejeita email já cadastrado", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(&domain.User{ID: 1, Email: "maria@example.com"}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Email:        "maria@example.com",
			PasswordHash: "Segura123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Rejeita senha fraca", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(nil, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Email:        "maria@example.com",
			PasswordHash: "fraca",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestService_LoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Segura123"), bcrypt.MinCost)
	require.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           42,
			Name:         "Maria",
			Email:        "maria@example.com",
			PasswordHash: string(hash),
			Active:       true,
			RoleID:       domain.RoleUser,
		}
	}

	t.Run("Login válido retorna token verificável", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(activeUser(), nil)

		token, err := service.LoginUser("Maria@Example.com", "Segura123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.UserRoleID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(activeUser(), nil)

		_, err := service.LoginUser("maria@example.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 42, authErr.UserID)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(nil, nil)

		_, err := service.LoginUser("maria@example.com", "Segura123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		disabled := activeUser()
		disabled.Active = false
		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(disabled, nil)

		_, err := service.LoginUser("maria@example.com", "Segura123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha válida", password: "Segura123", valid: true},
		{name: "muito curta", password: "Seg12", valid: false},
		{name: "sem maiúscula", password: "segura123", valid: false},
		{name: "sem minúscula", password: "SEGURA123", valid: false},
		{name: "sem número", password: "SeguraSenha", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Antiga123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Troca de senha válida persiste o novo hash", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByID(42).
			Return(&domain.User{ID: 42, PasswordHash: string(hash), Active: true}, nil)

		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NovaSenha123"))
			})

		err := service.ChangePassword(42, "Antiga123", "NovaSenha123")
		assert.NoError(t, err)
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByID(42).
			Return(&domain.User{ID: 42, PasswordHash: string(hash), Active: true}, nil)

		err := service.ChangePassword(42, "errada", "NovaSenha123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().
			GetUserByID(42).
			Return(nil, errors.New("connection reset"))

		err := service.ChangePassword(42, "Antiga123", "NovaSenha123")
		assert.Error(t, err)
	})
}
