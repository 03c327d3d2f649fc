package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Permissions", func() {
	ginkgo.Describe("PermissionsForRole", func() {
		ginkgo.It("should give the admin role the wildcard set", func() {
			set := PermissionsForRole(RoleAdmin)

			gomega.Expect(set.IsWildcard()).To(gomega.BeTrue())
			for _, key := range allPermissions {
				gomega.Expect(set.Has(key)).To(gomega.BeTrue(), "admin should hold %s", key)
			}
		})

		ginkgo.It("should satisfy keys outside the catalogue for the wildcard", func() {
			set := PermissionsForRole(RoleAdmin)
			gomega.Expect(set.Has("some_future_permission")).To(gomega.BeTrue())
		})

		ginkgo.It("should give non-admin roles only their listed keys", func() {
			for role, keys := range rolePermissions {
				set := PermissionsForRole(role)
				gomega.Expect(set.IsWildcard()).To(gomega.BeFalse(), "role %s must not be wildcard", role)

				granted := make(map[string]bool, len(keys))
				for _, key := range keys {
					granted[key] = true
					gomega.Expect(set.Has(key)).To(gomega.BeTrue(), "role %s should hold %s", role, key)
				}
				for _, key := range allPermissions {
					if !granted[key] {
						gomega.Expect(set.Has(key)).To(gomega.BeFalse(), "role %s should not hold %s", role, key)
					}
				}
			}
		})

		ginkgo.It("should give unknown roles an empty set", func() {
			set := PermissionsForRole("intern")
			gomega.Expect(set.IsWildcard()).To(gomega.BeFalse())
			gomega.Expect(set.Keys()).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Keys", func() {
		ginkgo.It("should expand the wildcard to the full sorted catalogue", func() {
			keys := WildcardPermissions().Keys()
			gomega.Expect(keys).To(gomega.HaveLen(len(allPermissions)))
			for i := 1; i < len(keys); i++ {
				gomega.Expect(keys[i-1] < keys[i]).To(gomega.BeTrue())
			}
		})

		ginkgo.It("should return explicit keys sorted", func() {
			keys := ExplicitPermissions(PermViewDashboard, PermManageUsers, PermViewCampaigns).Keys()
			gomega.Expect(keys).To(gomega.Equal([]string{PermManageUsers, PermViewCampaigns, PermViewDashboard}))
		})
	})

	ginkgo.Describe("IsValidRole", func() {
		ginkgo.It("should accept every defined role", func() {
			for _, role := range AllRoles() {
				gomega.Expect(IsValidRole(role)).To(gomega.BeTrue())
			}
		})

		ginkgo.It("should reject anything else", func() {
			gomega.Expect(IsValidRole("root")).To(gomega.BeFalse())
			gomega.Expect(IsValidRole("")).To(gomega.BeFalse())
		})
	})
})
