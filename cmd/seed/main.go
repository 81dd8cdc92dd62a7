package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/leave-backend-go/internal/config"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
	"github.com/peoplehub/leave-backend-go/internal/fixtures"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
	"github.com/peoplehub/leave-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/leave-backend-go/internal/repository/postgresql"
	policyService "github.com/peoplehub/leave-backend-go/internal/service/policy"
)

// Development seed: one organization, a superadmin, an HR user and one
// employee, plus the default leave policies created through the policy
// service so each gets its version 1 snapshot. Prints access tokens for
// manual API testing. Not idempotent; run against a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	orgID := uuid.NewString()
	if _, err := db.Exec(ctx,
		`INSERT INTO organizations (id, name, code, timezone) VALUES ($1, $2, $3, $4)`,
		orgID, "Acme Corp", "ACME", "Asia/Jakarta",
	); err != nil {
		log.Fatalf("failed to seed organization: %v", err)
	}

	superadminID := seedUser(ctx, db, nil, "superadmin@example.com", "superadmin123", user.RoleSuperAdmin)
	hrID := seedUser(ctx, db, &orgID, "hr@acme.example.com", "hr123456", user.RoleHR)
	employeeUserID := seedUser(ctx, db, &orgID, "jane@acme.example.com", "employee123", user.RoleEmployee)

	employeeID := uuid.NewString()
	if _, err := db.Exec(ctx,
		`INSERT INTO employees (id, user_id, organization_id, employee_code, department, designation, date_of_joining)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		employeeID, employeeUserID, orgID, "EMP-0001", "Engineering", "Software Engineer",
		time.Now().AddDate(-1, 0, 0),
	); err != nil {
		log.Fatalf("failed to seed employee: %v", err)
	}

	organizationRepo := postgresql.NewOrganizationRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	snapshotRepo := postgresql.NewPolicySnapshotRepository(db)
	txManager := postgresql.NewTxManager(db)
	policySvc := policyService.NewService(txManager, policyRepo, snapshotRepo, organizationRepo)

	hrActor := user.Actor{UserID: hrID, Role: user.RoleHR, OrganizationID: &orgID}
	for _, req := range fixtures.DefaultLeavePolicies() {
		if _, err := policySvc.Create(ctx, req, hrActor); err != nil {
			log.Fatalf("failed to seed policy %q: %v", req.Name, err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	printToken(JWTService, "superadmin", superadminID, user.RoleSuperAdmin, nil, nil)
	printToken(JWTService, "hr", hrID, user.RoleHR, &orgID, nil)
	printToken(JWTService, "employee", employeeUserID, user.RoleEmployee, &orgID, &employeeID)

	fmt.Println("Seed completed")
}

func seedUser(ctx context.Context, db *database.DB, organizationID *string, email, password string, role user.Role) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password for %s: %v", email, err)
	}

	id := uuid.NewString()
	if _, err := db.Exec(ctx,
		`INSERT INTO users (id, organization_id, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		id, organizationID, email, string(hash), string(role),
	); err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}

func printToken(svc jwt.Service, label, userID string, role user.Role, organizationID, employeeID *string) {
	token, _, err := svc.GenerateAccessToken(userID, role, organizationID, employeeID)
	if err != nil {
		log.Fatalf("failed to generate %s token: %v", label, err)
	}
	fmt.Printf("%s token: %s\n", label, token)
}
