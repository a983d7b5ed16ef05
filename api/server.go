package api

import (
	"context"
	"fmt"
	"os"

	"github.com/Felipeu28/CampaignControl-sub001/ai"
	"github.com/Felipeu28/CampaignControl-sub001/api/controllers"
	"github.com/Felipeu28/CampaignControl-sub001/api/transport"
	"github.com/Felipeu28/CampaignControl-sub001/logging"
	"github.com/Felipeu28/CampaignControl-sub001/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	profileStorage := &storage.DynamoCampaignProfileStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameProfiles,
	}
	draftStorage := &storage.DynamoContentDraftStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameDrafts,
	}

	// The generation service client
	generator := ai.NewClient(s.config.APIKey, s.config.BaseURL)

	//Register controllers
	profileController := controllers.NewProfileController(profileStorage)
	profileController.RegisterRoutes(r)
	planController := controllers.NewPlanController(profileStorage)
	planController.RegisterRoutes(r)
	voterFileController := controllers.NewVoterFileController()
	voterFileController.RegisterRoutes(r)
	complianceController := controllers.NewComplianceController(profileStorage)
	complianceController.RegisterRoutes(r)
	assistantController := controllers.NewAssistantController(profileStorage, draftStorage, generator,
		s.config.TextModel, s.config.ImageModel)
	assistantController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(profileStorage, draftStorage)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
