// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./plan.go -destination=../mocks/mock_plan_repository.go -package=mocks PlanRepositoryIface
//go:generate mockgen -source=./subscription.go -destination=../mocks/mock_subscription_repository.go -package=mocks SubscriptionRepositoryIface
//go:generate mockgen -source=./customer.go -destination=../mocks/mock_customer_repository.go -package=mocks CustomerRepositoryIface
