package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"vetapp-api/config"
	"vetapp-api/internal/cache"
	"vetapp-api/internal/notification"
	"vetapp-api/internal/services"
	"vetapp-api/internal/storage/postgres"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Pool        *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	OwnerService          services.OwnerService
	PetService            services.PetService
	AppointmentService    services.AppointmentService
	ClinicalRecordService services.ClinicalRecordService
	PrescriptionService   services.PrescriptionService
	InvoiceService        services.InvoiceService
}

// New wires repositories, caching, notifications and services into an
// Application container.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, sender notification.Sender) *Application {
	listCache := cache.NewListCache(redisClient)

	ownerRepo := postgres.NewOwnerRepo(pool)
	petRepo := postgres.NewPetRepo(pool)
	apptRepo := postgres.NewAppointmentRepo(pool)
	recordRepo := postgres.NewClinicalRecordRepo(pool)
	prescriptionRepo := postgres.NewPrescriptionRepo(pool)
	invoiceRepo := postgres.NewInvoiceRepo(pool)

	return &Application{
		Config:      cfg,
		Pool:        pool,
		RedisClient: redisClient,
		Validator:   validator.New(),

		OwnerService:          services.NewOwnerService(ownerRepo, listCache),
		PetService:            services.NewPetService(petRepo, listCache),
		AppointmentService:    services.NewAppointmentService(apptRepo, sender),
		ClinicalRecordService: services.NewClinicalRecordService(recordRepo),
		PrescriptionService:   services.NewPrescriptionService(prescriptionRepo),
		InvoiceService:        services.NewInvoiceService(invoiceRepo, ownerRepo, petRepo, sender, cfg.Billing),
	}
}
