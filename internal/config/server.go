package config

import (
	"fmt"
	"os"

	"FaceAttendance/database/postgres"
	attendanceHandler "FaceAttendance/internal/api/attendance/handler"
	attendanceRepository "FaceAttendance/internal/api/attendance/repository"
	attendanceService "FaceAttendance/internal/api/attendance/service"
	detectionHandler "FaceAttendance/internal/api/detection/handler"
	detectionService "FaceAttendance/internal/api/detection/service"
	personHandler "FaceAttendance/internal/api/person/handler"
	personRepository "FaceAttendance/internal/api/person/repository"
	personService "FaceAttendance/internal/api/person/service"
	"FaceAttendance/internal/middleware"
	"FaceAttendance/pkg/faceengine"
	"FaceAttendance/pkg/redis"
	"FaceAttendance/pkg/s3"
	"FaceAttendance/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	faceEngine  faceengine.IFaceEngine
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.faceEngine == nil {
		return nil, fmt.Errorf("face engine client is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to Postgres when DATABASE_URL is set; without it the
// server falls back to the JSON file stores under the data directory.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if os.Getenv("DATABASE_URL") == "" {
			if s.log != nil {
				s.log.Info("DATABASE_URL not set, using local file stores")
			}
			return nil
		}

		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithFaceEngine(engine faceengine.IFaceEngine) ServerOption {
	return func(s *Server) error {
		s.faceEngine = engine
		return nil
	}
}

// WithRedisServer enables the cross-instance debounce cache. Skipped when
// REDIS_ADDRESS is unset; the ledger policy alone then bounds repeat events.
func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if os.Getenv("REDIS_ADDRESS") == "" {
			if s.log != nil {
				s.log.Info("REDIS_ADDRESS not set, attendance debounce cache disabled")
			}
			return nil
		}
		s.redisServer = redis.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client stores reference photos in S3 when AWS credentials are set,
// otherwise under the local data directory.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		if os.Getenv("AWS_BUCKET_NAME") == "" {
			if s.log != nil {
				s.log.Info("AWS_BUCKET_NAME not set, storing photos locally")
			}
			return nil
		}

		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() error {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	var (
		personRepo     personRepository.Repository
		attendanceRepo attendanceRepository.Repository
		err            error
	)

	if s.db != nil {
		personRepo = personRepository.New(s.db, s.log)
		attendanceRepo = attendanceRepository.New(s.db, s.log)
	} else {
		personRepo, err = personRepository.NewLocal(dataDir, s.log)
		if err != nil {
			return fmt.Errorf("failed to open local identity store: %w", err)
		}
		attendanceRepo, err = attendanceRepository.NewLocal(dataDir, s.log)
		if err != nil {
			return fmt.Errorf("failed to open local attendance store: %w", err)
		}
	}

	var photos personService.PhotoStore
	if s.s3Client != nil {
		photos = s.s3Client
	} else {
		photos = personRepository.NewLocalPhotoStore(dataDir, s.log)
	}

	// Person Domain
	personServices := personService.NewPersonService(s.log, personRepo, s.faceEngine, photos)
	personHandlers := personHandler.New(s.log, s.validator, s.middleware, personServices, s.utils)

	if err := personServices.WarmCache(context.Background()); err != nil {
		s.log.Warnf("Failed to warm identity cache: %v", err)
	}

	// Detection Domain
	detectionServices := detectionService.NewDetectionService(s.log, s.faceEngine, personServices)
	detectionHandlers := detectionHandler.New(s.log, s.validator, s.middleware, detectionServices, s.utils)

	// Attendance Domain
	attendanceServices := attendanceService.NewAttendanceService(s.log, attendanceRepo, detectionServices, s.redisServer)
	attendanceHandlers := attendanceHandler.New(s.log, s.validator, s.middleware, attendanceServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, personHandlers, detectionHandlers, attendanceHandlers)

	return nil
}

func (s *Server) Run() error {
	router := s.engine.Group("/api")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.faceEngine.Close()
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
