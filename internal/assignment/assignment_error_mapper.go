package assignment

import (
	"errors"

	"gorm.io/gorm"

	assignmenterrors "assetdesk/internal/assignment/errors"
	deviceerrors "assetdesk/internal/device/errors"
	employeeerrors "assetdesk/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	return err
}

func mapDeviceError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deviceerrors.ErrDeviceNotFound
	}
	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
