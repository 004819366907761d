package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kurs-wjo/wjo_api/model"
)

// DeviceRepository binds client device ids to minted user identities.
type DeviceRepository struct {
	BaseRepository
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *DeviceRepository) GetByDeviceID(deviceID string) (*model.GuestDevice, error) {
	var device model.GuestDevice
	if err := ds.db.Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (ds *DeviceRepository) Create(deviceID string) (*model.GuestDevice, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	device := &model.GuestDevice{
		ID:        id.String(),
		DeviceID:  deviceID,
		UserID:    userID.String(),
		LastSeen:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ds.db.Create(device).Error; err != nil {
		return nil, err
	}
	return device, nil
}

func (ds *DeviceRepository) Touch(device *model.GuestDevice) error {
	device.LastSeen = time.Now()
	device.UpdatedAt = device.LastSeen
	return ds.db.Save(device).Error
}
