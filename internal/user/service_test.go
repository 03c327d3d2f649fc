package user

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/ceramiqa/quality-management/internal/auth"
	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepository struct {
	accounts map[int64]*userDatamodel.User
	failWith error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		accounts: map[int64]*userDatamodel.User{
			1: {ID: 1, Email: "admin@factory.fr", Role: auth.RoleAdmin, IsActive: true},
			2: {ID: 2, Email: "operator@factory.fr", Role: auth.RoleOperator, IsActive: true},
		},
	}
}

func (m *mockUserRepository) GetAll() ([]*userDatamodel.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]*userDatamodel.User, 0, len(m.accounts))
	for _, a := range m.accounts {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepository) UpdateRole(id int64, role string) error {
	if m.failWith != nil {
		return m.failWith
	}
	a, ok := m.accounts[id]
	if !ok {
		return errors.New("not found")
	}
	a.Role = role
	return nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service *Service
		repo    *mockUserRepository
	)

	ginkgo.BeforeEach(func() {
		repo = newMockUserRepository()
		service = NewService(repo, nil, slog.Default())
	})

	ginkgo.Describe("ListUsers", func() {
		ginkgo.It("should expose each account with its derived permissions", func() {
			users, err := service.ListUsers()

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(2))
			for _, u := range users {
				if u.Role == auth.RoleAdmin {
					gomega.Expect(u.Permissions().Has(auth.PermManageUsers)).To(gomega.BeTrue())
				} else {
					gomega.Expect(u.Permissions().Has(auth.PermManageUsers)).To(gomega.BeFalse())
				}
			}
		})
	})

	ginkgo.Describe("UpdateRole", func() {
		ginkgo.It("should reassign the role", func() {
			updated, err := service.UpdateRole(2, UpdateRoleDTO{Role: auth.RoleQualityManager}, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Role).To(gomega.Equal(auth.RoleQualityManager))
			gomega.Expect(repo.accounts[2].Role).To(gomega.Equal(auth.RoleQualityManager))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.UpdateRole(2, UpdateRoleDTO{Role: "superuser"}, 1)
			gomega.Expect(err).To(gomega.Equal(ErrUnknownRole))
		})

		ginkgo.It("should return not found for a missing user", func() {
			_, err := service.UpdateRole(99, UpdateRoleDTO{Role: auth.RoleOperator}, 1)
			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
		})
	})
})
