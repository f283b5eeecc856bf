package authenticating

import (
	"testing"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository/mocks"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Operador",
		Email:        "operador@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleOperator,
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	t.Run("credenciais válidas geram token verificável", func(t *testing.T) {
		user := hashedUser(t, "senha123")

		mockRepo.EXPECT().GetUserByEmail("operador@example.com").Return(user, nil)

		token, err := service.LoginUser("Operador@Example.com ", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, domain.RoleOperator, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		user := hashedUser(t, "senha123")

		mockRepo.EXPECT().GetUserByEmail("operador@example.com").Return(user, nil)

		token, err := service.LoginUser("operador@example.com", "outra-senha")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("fantasma@example.com").Return(nil, nil)

		token, err := service.LoginUser("fantasma@example.com", "senha123")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("usuário desativado", func(t *testing.T) {
		user := hashedUser(t, "senha123")
		user.Active = false

		mockRepo.EXPECT().GetUserByEmail("operador@example.com").Return(user, nil)

		token, err := service.LoginUser("operador@example.com", "senha123")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		token, err := service.LoginUser("", "")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_SegredoErrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)

	issuer := NewService(mockRepo, authConfig())
	verifier := NewService(mockRepo, &config.Config{Auth: config.Auth{Secret: "outro-segredo"}})

	user := hashedUser(t, "senha123")
	mockRepo.EXPECT().GetUserByEmail("operador@example.com").Return(user, nil)

	token, err := issuer.LoginUser("operador@example.com", "senha123")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	t.Run("usuário novo recebe hash e role padrão", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("novo@example.com").Return(nil, nil)
		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(u *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "senha123", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
				assert.Equal(t, domain.RoleOperator, u.RoleID)
				return u, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:  "Novo Usuário",
			Email: "Novo@Example.com",
		}, "senha123")
		require.NoError(t, err)
		assert.Equal(t, "novo@example.com", created.Email)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByEmail("novo@example.com").
			Return(&domain.User{Email: "novo@example.com"}, nil)

		created, err := service.CreateUser(&domain.User{
			Name:  "Novo Usuário",
			Email: "novo@example.com",
		}, "senha123")
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		created, err := service.CreateUser(&domain.User{}, "")
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_GetUserProfile_RemoveOHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, authConfig())

	user := hashedUser(t, "senha123")
	mockRepo.EXPECT().GetUserByID(7).Return(user, nil)

	profile, err := service.GetUserProfile(7)
	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
}
