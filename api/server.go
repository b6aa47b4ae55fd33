package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/festival-results/api/controllers"
	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Server struct {
	config *Config

	hub        *realtime.Hub
	scoreboard *realtime.RefreshCoordinator
	cancel     context.CancelFunc
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	stores, err := s.openStores(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to open storage: %v", err)
		panic("failed to open storage")
	}

	r, err := s.Router(gin.DebugMode, stores)
	if err != nil {
		logging.Log.Errorf("failed to build router: %v", err)
		panic("failed to build router")
	}
	defer s.Close()

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) openStores(ctx context.Context) (*storage.Stores, error) {
	if s.config.Driver == "memory" {
		logging.Log.Warn("STORAGE: using in-memory stores, data is lost on restart")
		return storage.NewMemoryStores(), nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return storage.NewDynamoStores(dynamodb.NewFromConfig(cfg), s.config.Tables), nil
}

// Router wires the services, the realtime hub and every controller on top of
// stores. Close releases the background scoreboard refresher.
func (s *Server) Router(ginMode string, stores *storage.Stores) (*gin.Engine, error) {
	if err := models.RegisterBindingValidators(); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	s.hub = realtime.NewHub(s.config.SubscriberBuffer, m)

	rules := s.config.Rules
	if rules.Placement == nil {
		rules = contest.DefaultScoringRules()
	}
	guard := contest.NewRegistrationGuard(stores.Programs, stores.Registrations)
	results := contest.NewResultLifecycle(stores, guard, rules, s.hub, m)
	replacements := contest.NewReplacementLifecycle(stores, guard, s.hub, m)
	desk := contest.NewRegistrationDesk(stores, guard, s.hub)
	roster := contest.NewJuryRoster(stores, guard, s.hub)
	board := contest.NewScoreBoard(stores, rules)

	if err := s.followScores(m); err != nil {
		return nil, err
	}

	r := transport.NewRouter(ginMode, transport.Tokens{
		Admin: s.config.AdminToken,
		Jury:  s.config.JuryToken,
		Team:  s.config.TeamToken,
	}, registry)

	//Register controllers
	controllers.NewResultsController(results).RegisterRoutes(r)
	controllers.NewReplacementsController(replacements).RegisterRoutes(r)
	controllers.NewRegistrationsController(desk).RegisterRoutes(r)
	controllers.NewAssignmentsController(roster).RegisterRoutes(r)
	controllers.NewRealtimeController(s.hub, board, 0).RegisterRoutes(r)
	controllers.NewProgramMetaController(stores.Programs, stores.Results).RegisterRoutes(r)
	controllers.NewTeamMetaController(stores.Teams).RegisterRoutes(r)
	controllers.NewStudentMetaController(stores.Students, stores.Teams, s.hub).RegisterRoutes(r)

	return r, nil
}

// followScores announces scoreboard.updated once per coalesced burst of
// result or student changes. Scores are computed on read, so the event only
// tells viewers to fetch /api/scores again.
func (s *Server) followScores(m *metrics.Metrics) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.scoreboard = realtime.NewRefreshCoordinator(ctx, "scoreboard", s.config.QuiescenceWindow,
		func(context.Context) error {
			return s.hub.Publish(realtime.ChannelScoreboard, realtime.KindUpdated)
		}, m)

	sub, err := s.hub.Subscribe(realtime.ChannelResults, realtime.ChannelStudents)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe scoreboard refresher: %w", err)
	}
	s.scoreboard.Follow(sub)
	go func() {
		<-ctx.Done()
		sub.Close()
	}()
	return nil
}

func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
