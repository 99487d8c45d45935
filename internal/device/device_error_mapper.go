package device

import (
	"errors"

	"gorm.io/gorm"

	deviceerrors "assetdesk/internal/device/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deviceerrors.ErrDeviceNotFound
	}

	return err
}
