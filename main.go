package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labiri-api/api"
	api_i "github.com/beka-birhanu/labiri-api/api/i"
	"github.com/beka-birhanu/labiri-api/api/identity"
	leaderboardapi "github.com/beka-birhanu/labiri-api/api/leaderboard"
	mazeapi "github.com/beka-birhanu/labiri-api/api/maze"
	"github.com/beka-birhanu/labiri-api/config"
	logger "github.com/beka-birhanu/labiri-api/infrastruture/log"
	"github.com/beka-birhanu/labiri-api/infrastruture/repo"
	"github.com/beka-birhanu/labiri-api/infrastruture/scoreboard"
	"github.com/beka-birhanu/labiri-api/infrastruture/token"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/service"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs                  config.Config
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	userRepo              *repo.UserRepo
	scoreBoard            i.ScoreBoard
	leaderboard           i.Leaderboard
	mazeSessionManager    i.MazeSessionManager
	jwtTokenizer          i.Tokenizer
	authService           i.Authenticator
	authController        api_i.Controller
	mazeController        api_i.Controller
	leaderboardController api_i.Controller
	router                *api.Router
	appLogger             *logger.Logger
)

func mustLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initUserRepo(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initLeaderboard() {
	var err error
	scoreBoard, err = scoreboard.NewRedisScoreBoard(redisClient, envs.LeaderboardTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating score board: %v", err))
		os.Exit(1)
	}

	leaderboard, err = service.NewLeaderboard(service.LeaderboardConfig{
		Board:    scoreBoard,
		UserRepo: userRepo,
		Logger:   mustLogger("LEADERBOARD", config.ColorPurple),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initMazeSessionManager() {
	gen := maze.NewGenerator(envs.Maze.RandomSeed)
	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(service.MazeSessionConfig{
		Maze:        envs.Maze,
		Generator:   gen,
		Leaderboard: leaderboard,
		Logger:      mustLogger("MAZE-SESSION", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze session manager initialized (first level %dx%d, seed %d)", envs.Maze.InitialCols, envs.Maze.InitialRows, gen.Seed()))
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	leaderboardController, err = leaderboardapi.NewLeaderboardController(leaderboard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, leaderboardController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = mustLogger("APP", config.ColorGreen)
	envs = config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initUserRepo(ctx, mongoClient)

	initRedis(ctx)
	defer redisClient.Close()

	initLeaderboard()
	initMazeSessionManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
