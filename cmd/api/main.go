package main

import (
	"fmt"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/config"
	appHTTP "github.com/shiftboard/shiftboard-backend-go/internal/handler/http"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/shiftboard/shiftboard-backend-go/internal/repository/postgresql"
	authService "github.com/shiftboard/shiftboard-backend-go/internal/service/auth"
	leaveService "github.com/shiftboard/shiftboard-backend-go/internal/service/leave"
	reportService "github.com/shiftboard/shiftboard-backend-go/internal/service/report"
	shiftService "github.com/shiftboard/shiftboard-backend-go/internal/service/shift"
	userService "github.com/shiftboard/shiftboard-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, shiftRepo)
	reportSvc := reportService.NewReportService(shiftRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		userHandler,
		shiftHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
