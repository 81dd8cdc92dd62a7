package main

import (
	"fmt"
	"net/http"

	"github.com/peoplehub/leave-backend-go/internal/config"
	appHTTP "github.com/peoplehub/leave-backend-go/internal/handler/http"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
	"github.com/peoplehub/leave-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/leave-backend-go/internal/repository/postgresql"
	leaveService "github.com/peoplehub/leave-backend-go/internal/service/leave"
	policyService "github.com/peoplehub/leave-backend-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	organizationRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	snapshotRepo := postgresql.NewPolicySnapshotRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	policySvc := policyService.NewService(txManager, policyRepo, snapshotRepo, organizationRepo)
	leaveSvc := leaveService.NewService(organizationRepo, employeeRepo, policyRepo, leaveRequestRepo)

	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(JWTService, policyHandler, leaveHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
