package routes

import (
	"log"
	"os"
	"strconv"

	_ "alteapay/docs" // This will be auto-generated
	"alteapay/internal/adapter/http/handlers"
	repository2 "alteapay/internal/adapter/persistence/repository"
	"alteapay/internal/infrastructure/database"
	"alteapay/internal/infrastructure/notifications"
	"alteapay/internal/infrastructure/payments"
	"alteapay/internal/usecase"
	"alteapay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sourceRecordRepo := repository2.NewSourceRecordDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	debtRepo := repository2.NewDebtDynamoRepository(ddb)
	agreementRepo := repository2.NewAgreementDynamoRepository(ddb)
	actionRepo := repository2.NewCollectionActionDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	asaasGateway, err := payments.NewAsaasGateway(os.Getenv("ASAAS_API_URL"), os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Printf("ASAAS gateway not configured: %v", err)
	} else {
		paymentGateway = asaasGateway
	}

	var smsSender interfaces.ISMSSender
	twilioSender, err := notifications.NewTwilioSMSSender(
		os.Getenv("TWILIO_API_URL"),
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_FROM_NUMBER"),
	)
	if err != nil {
		log.Printf("Twilio sender not configured: %v", err)
	} else {
		smsSender = twilioSender
	}

	var emailSender interfaces.IEmailSender
	resendSender, err := notifications.NewResendEmailSender(
		os.Getenv("RESEND_API_URL"),
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("RESEND_FROM_EMAIL"),
	)
	if err != nil {
		log.Printf("Resend sender not configured: %v", err)
	} else {
		emailSender = resendSender
	}

	negotiationUseCase := usecase.NewBulkNegotiationUseCase(
		sourceRecordRepo, customerRepo, debtRepo, agreementRepo,
		actionRepo, companyRepo, paymentGateway, smsSender, emailSender,
	)
	syncUseCase := usecase.NewPaymentSyncUseCase(
		sourceRecordRepo, customerRepo, debtRepo, agreementRepo,
		notificationRepo, paymentGateway,
	)

	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCollectionRoutes(v1, negotiationHandler, syncHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
