package auth

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockAccountRepository struct {
	accounts      map[string]*userDatamodel.User
	accountsByID  map[int64]*userDatamodel.User
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockAccountRepository() *mockAccountRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	repo := &mockAccountRepository{
		accounts:     make(map[string]*userDatamodel.User),
		accountsByID: make(map[int64]*userDatamodel.User),
		nextID:       1,
	}

	seed := []*userDatamodel.User{
		{Email: "operator@factory.fr", FullName: "Op One", PasswordHash: string(hash), Role: RoleOperator, IsActive: true},
		{Email: "admin@factory.fr", FullName: "Admin One", PasswordHash: string(hash), Role: RoleAdmin, IsActive: true},
		{Email: "qm@factory.fr", FullName: "QM One", PasswordHash: string(hash), Role: RoleQualityManager, IsActive: true},
	}
	for _, account := range seed {
		_ = repo.Create(account)
	}
	return repo
}

func (m *mockAccountRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if account, ok := m.accounts[email]; ok && account.IsActive {
		return account, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAccountRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if account, ok := m.accountsByID[id]; ok && account.IsActive {
		return account, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAccountRepository) EmailExists(email string) (bool, error) {
	if m.returnError {
		return false, m.errorToReturn
	}
	_, ok := m.accounts[email]
	return ok, nil
}

func (m *mockAccountRepository) Create(account *userDatamodel.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	account.ID = m.nextID
	m.nextID++
	m.accounts[account.Email] = account
	m.accountsByID[account.ID] = account
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockAccountRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockAccountRepository()
		tokenGen = NewJWTTokenGenerator("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
		service = NewService(mockRepo, tokenGen, nil, slog.Default(), bcrypt.MinCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return the user and a token pair", func() {
				user, tokens, err := service.Authenticate(LoginDTO{
					Email:    "operator@factory.fr",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(user.Email).To(gomega.Equal("operator@factory.fr"))
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
			})

			ginkgo.It("should derive permissions from the stored role", func() {
				user, _, err := service.Authenticate(LoginDTO{
					Email:    "operator@factory.fr",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(user.HasPermission(PermCreateProductionLots)).To(gomega.BeTrue())
				gomega.Expect(user.HasPermission(PermManageUsers)).To(gomega.BeFalse())
			})

			ginkgo.It("should issue an access token that validates back to the same user", func() {
				_, tokens, err := service.Authenticate(LoginDTO{
					Email:    "admin@factory.fr",
					Password: "correct_password",
				})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.Email).To(gomega.Equal("admin@factory.fr"))
				gomega.Expect(claims.Role).To(gomega.Equal(RoleAdmin))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the same error for an unknown email", func() {
				user, tokens, err := service.Authenticate(LoginDTO{
					Email:    "nobody@factory.fr",
					Password: "any_password",
				})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(user).To(gomega.BeNil())
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return the same error for a wrong password", func() {
				user, tokens, err := service.Authenticate(LoginDTO{
					Email:    "operator@factory.fr",
					Password: "wrong_password",
				})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(user).To(gomega.BeNil())
				gomega.Expect(tokens.RefreshToken).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should reject an empty email", func() {
				_, _, err := service.Authenticate(LoginDTO{Password: "password"})
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("email is required"))
			})

			ginkgo.It("should reject an empty password", func() {
				_, _, err := service.Authenticate(LoginDTO{Email: "operator@factory.fr"})
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("password is required"))
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should default the role to operator", func() {
			user, err := service.Register(RegisterDTO{
				Email:    "new@factory.fr",
				Password: "secret-password",
				FullName: "New Hire",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.Role).To(gomega.Equal(RoleOperator))
			gomega.Expect(user.IsAdmin()).To(gomega.BeFalse())
		})

		ginkgo.It("should allow logging in after registration", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "new@factory.fr",
				Password: "secret-password",
				FullName: "New Hire",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			user, tokens, err := service.Authenticate(LoginDTO{
				Email:    "new@factory.fr",
				Password: "secret-password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.Role).To(gomega.Equal(RoleOperator))
			gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject a duplicate email", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "operator@factory.fr",
				Password: "secret-password",
				FullName: "Duplicate",
			})

			gomega.Expect(err).To(gomega.Equal(ErrDuplicateEmail))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "new@factory.fr",
				Password: "secret-password",
				FullName: "New Hire",
				Role:     "superuser",
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should never store the plaintext password", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "new@factory.fr",
				Password: "secret-password",
				FullName: "New Hire",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			stored := mockRepo.accounts["new@factory.fr"]
			gomega.Expect(stored.PasswordHash).ToNot(gomega.Equal("secret-password"))
			gomega.Expect(VerifyPassword(stored.PasswordHash, "secret-password")).To(gomega.Succeed())
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a fresh pair for a valid refresh token", func() {
			_, tokens, err := service.Authenticate(LoginDTO{
				Email:    "operator@factory.fr",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject an access token used as a refresh token", func() {
			_, tokens, err := service.Authenticate(LoginDTO{
				Email:    "operator@factory.fr",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(tokens.AccessToken)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a refresh for a deactivated account", func() {
			_, tokens, err := service.Authenticate(LoginDTO{
				Email:    "operator@factory.fr",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockRepo.accounts["operator@factory.fr"].IsActive = false

			_, err = service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).To(gomega.Equal(ErrUserInactive))
		})
	})

	ginkgo.Describe("GetUserWithPermissions", func() {
		ginkgo.It("should reflect a role change without a new token", func() {
			user, _, err := service.Authenticate(LoginDTO{
				Email:    "operator@factory.fr",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.HasPermission(PermManageCompliance)).To(gomega.BeFalse())

			mockRepo.accounts["operator@factory.fr"].Role = RoleQualityManager

			reloaded, err := service.GetUserWithPermissions(user.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reloaded.HasPermission(PermManageCompliance)).To(gomega.BeTrue())
		})
	})
})
