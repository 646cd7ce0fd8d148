package di

import (
	"github.com/shaman87/drivent/internal/handler"
	"github.com/shaman87/drivent/internal/repository"
	"github.com/shaman87/drivent/internal/service"
	"github.com/shaman87/drivent/pkg/database"
	"github.com/shaman87/drivent/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	EnrollmentRepo repository.EnrollmentRepository
	TicketRepo     repository.TicketRepository
	HotelRepo      repository.HotelRepository
	BookingRepo    repository.BookingRepository
	PaymentRepo    repository.PaymentRepository

	// Publishers
	EventPublisher service.EventPublisher

	// Services
	TicketService  service.TicketService
	HotelService   service.HotelService
	BookingService service.BookingService
	PaymentService service.PaymentService

	// Handlers
	HealthHandler  *handler.HealthHandler
	TicketHandler  *handler.TicketHandler
	HotelHandler   *handler.HotelHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB             *database.PostgresDB
	Redis          *redis.Client
	EnrollmentRepo repository.EnrollmentRepository
	TicketRepo     repository.TicketRepository
	HotelRepo      repository.HotelRepository
	BookingRepo    repository.BookingRepository
	PaymentRepo    repository.PaymentRepository
	EventPublisher service.EventPublisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:             cfg.DB,
		Redis:          cfg.Redis,
		EnrollmentRepo: cfg.EnrollmentRepo,
		TicketRepo:     cfg.TicketRepo,
		HotelRepo:      cfg.HotelRepo,
		BookingRepo:    cfg.BookingRepo,
		PaymentRepo:    cfg.PaymentRepo,
		EventPublisher: cfg.EventPublisher,
	}

	// Initialize services
	c.TicketService = service.NewTicketService(c.EnrollmentRepo, c.TicketRepo)
	c.HotelService = service.NewHotelService(c.TicketRepo, c.HotelRepo)
	c.BookingService = service.NewBookingService(c.EnrollmentRepo, c.TicketRepo, c.BookingRepo, c.EventPublisher)
	c.PaymentService = service.NewPaymentService(c.TicketRepo, c.EnrollmentRepo, c.PaymentRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.TicketHandler = handler.NewTicketHandler(c.TicketService)
	c.HotelHandler = handler.NewHotelHandler(c.HotelService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.PaymentHandler = handler.NewPaymentHandler(c.PaymentService)

	return c
}
