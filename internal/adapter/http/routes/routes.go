package routes

import (
	"log"
	"os"
	"strconv"

	_ "vantivpay/docs" // This will be auto-generated
	"vantivpay/internal/adapter/http/handlers"
	repository2 "vantivpay/internal/adapter/persistence/repository"
	"vantivpay/internal/infrastructure/database"
	"vantivpay/internal/infrastructure/payments"
	"vantivpay/internal/usecase"
	"vantivpay/internal/usecase/interfaces"

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

	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	var gateway interfaces.IVantivGateway
	vantivGateway, err := payments.NewVantivGateway(payments.Config{
		Login:      os.Getenv("VANTIV_LOGIN"),
		Password:   os.Getenv("VANTIV_PASSWORD"),
		MerchantID: os.Getenv("VANTIV_MERCHANT_ID"),
		URL:        os.Getenv("VANTIV_URL"),
		Test:       isVantivTestMode(),
	}, nil)
	if err != nil {
		log.Printf("Vantiv gateway not configured: %v", err)
	} else {
		gateway = vantivGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, gateway)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func isVantivTestMode() bool {
	v, err := strconv.ParseBool(os.Getenv("VANTIV_TEST"))
	if err != nil {
		// Sandbox unless live traffic is opted into explicitly.
		return true
	}
	return v
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
