package services

import (
	"context"
	"regexp"
	"strings"

	"portfolio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MessageInput is a contact form submission.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (in MessageInput) validate() error {
	if blank(in.Name) || blank(in.Email) || blank(in.Message) {
		return invalid("All fields are required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return invalid("Invalid email format")
	}
	return nil
}

// MessageService stores contact messages. Messages cannot be edited.
type MessageService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewMessageService(db *gorm.DB, logger *zap.Logger) *MessageService {
	return &MessageService{DB: db, Logger: logger}
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&messages).Error
	return messages, err
}

func (s *MessageService) Get(ctx context.Context, id uint) (*models.Message, error) {
	var m models.Message
	if err := s.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (s *MessageService) Create(ctx context.Context, in MessageInput) (*models.Message, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := models.Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: in.Message,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	messagesReceived.Inc()
	s.Logger.Info("Contact message received", zap.Uint("id", m.ID))
	return &m, nil
}

func (s *MessageService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.Logger.Info("Message deleted", zap.Uint("id", id))
	return nil
}
