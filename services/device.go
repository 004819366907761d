package services

import (
	"errors"
	"os"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/services/repositories"
)

// DeviceService is the anonymous identity layer: a device id maps to one
// minted user id, registration is idempotent and doubles as the daily
// check-in for streak accounting.
type DeviceService struct {
	context.DefaultService
	dbSvc      DbService
	jwtSvc     *JWTService
	profileSvc *ProfileService

	deviceRepo *repositories.DeviceRepository

	baseURL string
}

const DEVICE_SVC = "device_svc"

func (svc DeviceService) Id() string {
	return DEVICE_SVC
}

func (svc *DeviceService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	return svc.DefaultService.Configure(ctx)
}

func (svc *DeviceService) Start() error {
	svc.dbSvc = svc.Service(DbSvcId()).(DbService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.profileSvc = svc.Service(PROFILE_SVC).(*ProfileService)
	svc.deviceRepo = repositories.NewDeviceRepository(svc.dbSvc.Db())
	return nil
}

// RegisterDevice returns the identity bound to the device id, minting one
// on first contact, and runs the daily login bookkeeping.
func (svc *DeviceService) RegisterDevice(req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error) {
	isNew := false
	device, err := svc.deviceRepo.GetByDeviceID(req.DeviceID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.dbSvc.HandleError(err)
		}

		device, err = svc.deviceRepo.Create(req.DeviceID)
		if err != nil {
			return nil, svc.dbSvc.HandleError(err)
		}
		isNew = true
		log.WithFields(log.Fields{
			"device_id": req.DeviceID,
			"user_id":   device.UserID,
		}).Info("registered new device")
	} else {
		if err := svc.deviceRepo.Touch(device); err != nil {
			return nil, svc.dbSvc.HandleError(err)
		}
	}

	if _, err := svc.profileSvc.TouchLogin(device.UserID); err != nil {
		return nil, err
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(device.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterDeviceResponse{
		UserID:  device.UserID,
		IsNew:   isNew,
		Tokens:  tokens,
		BaseURL: svc.baseURL,
	}, nil
}

// RefreshToken rotates the token pair for a still-valid refresh token.
func (svc *DeviceService) RefreshToken(req dto.RefreshTokenRequest) (*dto.TokenPair, error) {
	userID, err := svc.jwtSvc.VerifyJWTToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return svc.jwtSvc.GenerateTokenPair(userID)
}
