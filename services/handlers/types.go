package handlers

import (
	"mime/multipart"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/game"
	"github.com/kurs-wjo/wjo_api/model"
)

type DeviceServiceInterface interface {
	RegisterDevice(req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error)
	RefreshToken(req dto.RefreshTokenRequest) (*dto.TokenPair, error)
}

type GameServiceInterface interface {
	StartSession(userID string, req dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSession(userID, sessionID string) (*dto.SessionResponse, error)
	HandleAction(userID, sessionID string, req dto.ActionRequest) (*dto.SessionResponse, error)
	EndSession(userID, sessionID string) error
	Dashboard(userID string) (*game.UIModel, error)
}

type ProfileServiceInterface interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	SetLanguage(userID, language string) (*model.UserProfile, error)
	SetDailyGoal(userID string, goal int) (*model.UserProfile, error)
	ResetProgress(userID string) error
}

type ContentServiceInterface interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error)
	UpdateQuestion(id string, req dto.UpdateQuestionRequest) (*model.Question, error)
	DeleteQuestion(id string) error
	GetQuestion(id string) (*model.Question, error)
	ListQuestions(offset, limit int) (*dto.QuestionListResponse, error)
	ImportQuestions(req dto.ImportQuestionsRequest) (int, error)
	SetQuestionImage(id, url string) (*model.Question, error)
}

type MediaServiceInterface interface {
	UploadQuestionImage(questionID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}
