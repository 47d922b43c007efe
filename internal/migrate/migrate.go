// internal/migrate/migrate.go
package migrate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrator bootstraps the schema and plan reference data. It runs from the
// operator CLI, not from the API process.
type Migrator struct {
	pool *pgxpool.Pool
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool}
}

// InitializeSchema creates the tables and indexes if they do not exist.
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
	CREATE EXTENSION IF NOT EXISTS citext;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email CITEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		owner_id UUID NOT NULL REFERENCES users(id),
		contact_email CITEXT,
		contact_phone TEXT,
		website_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS memberships (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		user_id UUID NOT NULL REFERENCES users(id),
		role TEXT NOT NULL DEFAULT 'member',
		user_email CITEXT NOT NULL,
		org_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE(organization_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS plans (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		max_members INT NOT NULL,
		max_customers INT NOT NULL,
		max_organizations INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID REFERENCES organizations(id),
		user_id UUID REFERENCES users(id),
		plan_id UUID NOT NULL REFERENCES plans(id),
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		starts_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ends_at TIMESTAMPTZ,
		current BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (organization_id IS NOT NULL OR user_id IS NOT NULL)
	);

	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		email CITEXT,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_memberships_user ON memberships(user_id);
	CREATE INDEX IF NOT EXISTS idx_organizations_owner ON organizations(owner_id);
	CREATE INDEX IF NOT EXISTS idx_customers_org ON customers(organization_id);
	CREATE UNIQUE INDEX IF NOT EXISTS uk_subscriptions_current_org
		ON subscriptions(organization_id) WHERE current AND organization_id IS NOT NULL;
	CREATE UNIQUE INDEX IF NOT EXISTS uk_subscriptions_current_user
		ON subscriptions(user_id) WHERE current AND user_id IS NOT NULL;
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// planSeed is one immutable plan row.
type planSeed struct {
	name         string
	maxMembers   int
	maxCustomers int
	maxOrgs      int
}

var planSeeds = []planSeed{
	{name: "free", maxMembers: 1, maxCustomers: 10, maxOrgs: 1},
	{name: "basic", maxMembers: 5, maxCustomers: 100, maxOrgs: 3},
	{name: "premium", maxMembers: 25, maxCustomers: 1000, maxOrgs: 10},
}

// SeedPlans inserts the plan reference rows. Existing rows keep their limits:
// plans are immutable once customers depend on them.
func (m *Migrator) SeedPlans(ctx context.Context) error {
	for _, seed := range planSeeds {
		_, err := m.pool.Exec(ctx, `
			INSERT INTO plans (name, max_members, max_customers, max_organizations)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
		`, seed.name, seed.maxMembers, seed.maxCustomers, seed.maxOrgs)
		if err != nil {
			return fmt.Errorf("seeding plan %s: %w", seed.name, err)
		}
	}
	return nil
}

// Run applies the schema and seeds in order.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.InitializeSchema(ctx); err != nil {
		return err
	}
	return m.SeedPlans(ctx)
}
