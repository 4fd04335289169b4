package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/mailboxapi"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/ratelimit"
	"github.com/yellowboat/backoffice/internal/repositories"
)

// captureProvider records outgoing emails instead of sending them.
type captureProvider struct {
	mu   sync.Mutex
	sent []capturedMail
	fail bool
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (p *captureProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("smtp unavailable")
	}
	p.sent = append(p.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (p *captureProvider) sentTo(addr string) []capturedMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []capturedMail
	for _, m := range p.sent {
		if m.To == addr {
			out = append(out, m)
		}
	}
	return out
}

func (p *captureProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

// testEnv wires the full service stack against an in-memory database.
type testEnv struct {
	db       *gorm.DB
	provider *captureProvider

	userRepo     repositories.UserRepository
	trainerRepo  repositories.TrainerRepository
	trainingRepo repositories.TrainingRepository
	appRepo      repositories.ApplicationRepository
	mailboxRepo  repositories.MailboxRepository

	notification *NotificationService
	auth         *AuthService
	training     *TrainingService
	application  *ApplicationService
	registration *RegistrationService
	mailbox      *MailboxService
	message      *MessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Customer{},
		&models.Trainer{},
		&models.Location{},
		&models.TrainingCatalogEntry{},
		&models.Training{},
		&models.TrainingTask{},
		&models.ActivityLog{},
		&models.TrainerApplication{},
		&models.TrainerRegistration{},
		&models.Message{},
		&models.MailboxEmail{},
		&models.EmailAttachment{},
	))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Mailbox.Domain = "trainer.example.com"

	provider := &captureProvider{}
	mailboxClient := mailboxapi.NewClient(cfg)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(3, 5*time.Minute))

	userRepo := repositories.NewUserRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	trainingRepo := repositories.NewTrainingRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	regRepo := repositories.NewRegistrationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	mailboxRepo := repositories.NewMailboxRepository(db)

	notification := NewNotificationService(provider, userRepo)

	return &testEnv{
		db:           db,
		provider:     provider,
		userRepo:     userRepo,
		trainerRepo:  trainerRepo,
		trainingRepo: trainingRepo,
		appRepo:      appRepo,
		mailboxRepo:  mailboxRepo,
		notification: notification,
		auth:         NewAuthService(cfg, userRepo, trainerRepo, limiter, notification),
		training:     NewTrainingService(trainingRepo, trainerRepo, brandRepo, customerRepo, notification),
		application:  NewApplicationService(appRepo, trainingRepo, trainerRepo, notification),
		registration: NewRegistrationService(regRepo, userRepo, trainerRepo, mailboxClient, notification),
		mailbox:      NewMailboxService(mailboxRepo, userRepo, provider, mailboxClient),
		message:      NewMessageService(messageRepo, userRepo),
	}
}

func (e *testEnv) createBrand(t *testing.T, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name, Slug: name}
	require.NoError(t, e.db.Create(brand).Error)
	return brand
}

func (e *testEnv) createCustomer(t *testing.T, company string) *models.Customer {
	t.Helper()
	customer := &models.Customer{CompanyName: company, Status: models.CustomerStatusActive}
	require.NoError(t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) createStaffUser(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@backoffice.example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

// createTrainerAccount creates a trainer profile with a linked portal user.
func (e *testEnv) createTrainerAccount(t *testing.T, lastName string) (*models.User, *models.Trainer) {
	t.Helper()

	email := lastName + "@trainers.example.com"
	user := &models.User{
		Username:     email,
		Email:        email,
		PasswordHash: "x",
		Role:         models.UserRoleTrainer,
		IsActive:     true,
		LastName:     lastName,
	}
	require.NoError(t, e.db.Create(user).Error)

	trainer := &models.Trainer{
		FirstName: "Test",
		LastName:  lastName,
		Email:     email,
		UserID:    &user.ID,
	}
	require.NoError(t, e.db.Create(trainer).Error)
	return user, trainer
}

func (e *testEnv) createTraining(t *testing.T, status models.TrainingStatus, trainerID *string) *models.Training {
	t.Helper()

	brand := e.createBrand(t, "brand-"+uuid.NewString())
	customer := e.createCustomer(t, "Customer GmbH")

	start := time.Now().AddDate(0, 1, 0)
	training := &models.Training{
		Title:          "Leadership Basics",
		TrainingType:   models.TrainingTypeClassroom,
		TrainingFormat: models.TrainingFormatInhouse,
		Status:         status,
		StartDate:      &start,
		BrandID:        brand.ID,
		CustomerID:     customer.ID,
		TrainerID:      trainerID,
	}
	require.NoError(t, e.db.Create(training).Error)
	return training
}
