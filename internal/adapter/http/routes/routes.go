package routes

import (
	"context"
	"log"

	"university_billing/internal/adapter/http/handlers"
	"university_billing/internal/adapter/persistence/postgres"
	"university_billing/internal/adapter/persistence/repository"
	"university_billing/internal/config"
	"university_billing/internal/infrastructure/database"
	"university_billing/internal/infrastructure/identity"
	"university_billing/internal/infrastructure/payments"
	"university_billing/internal/usecase"
	"university_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(cfg.HTTPAddress())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type repositories struct {
	fees     interfaces.IInscriptionFeeRepository
	students interfaces.IStudentRepository
}

func getRoutes(cfg config.Config) {
	repos, err := openRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	validator := identity.NewRemoteTokenValidator(cfg.IdentityAuthorityURL, cfg.AuthTimeout)
	accessUseCase := usecase.NewAccessUseCase(validator)
	trustFilter := usecase.NewGatewayTrustFilter(cfg.GatewaySecret)

	feeUseCase := usecase.NewInscriptionFeeUseCase(repos.fees, paymentGateway)
	studentUseCase := usecase.NewStudentUseCase(repos.students)

	feeHandler := handlers.NewInscriptionFeeHandler(feeUseCase)
	studentHandler := handlers.NewStudentHandler(studentUseCase)

	addPingRoutes(router)

	v1 := router.Group("/v1")
	protected := v1.Group("", guards(trustFilter, accessUseCase, AdminRole)...)
	addInscriptionFeeRoutes(protected, feeHandler)
	addStudentRoutes(protected, studentHandler)
}

func openRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageBackend == config.StoragePostgres {
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return repositories{}, err
		}
		return repositories{
			fees:     postgres.NewInscriptionFeeStore(pool),
			students: postgres.NewStudentStore(pool),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	return repositories{
		fees:     repository.NewInscriptionFeeDynamoRepository(ddb, cfg.FeesTable),
		students: repository.NewStudentDynamoRepository(ddb, cfg.StudentsTable),
	}, nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
