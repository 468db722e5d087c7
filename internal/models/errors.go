package models

import "errors"

var (
	// ErrStoreUnavailable - хранилище недоступно или вернуло транспортную ошибку
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound - больница с таким id не найдена
	ErrNotFound = errors.New("hospital not found")
	// ErrInvalidBedType - тип койки вне фиксированного перечня
	ErrInvalidBedType = errors.New("invalid bed type")
	// ErrInvalidHospitalType - тип больницы вне фиксированного перечня
	ErrInvalidHospitalType = errors.New("invalid hospital type")
	// ErrNegativeBedCount - количество коек не может быть отрицательным
	ErrNegativeBedCount = errors.New("bed count must not be negative")
	// ErrGeolocationUnavailable - нет координат пользователя
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	// ErrLocationUnknown - у больницы не указано местоположение
	ErrLocationUnknown = errors.New("hospital location unknown")
	// ErrAdminHasHospital - у администратора уже есть больница
	ErrAdminHasHospital = errors.New("admin already owns a hospital")
	// ErrEmptyUpdate - в обновлении нет ни одного поля
	ErrEmptyUpdate = errors.New("nothing to update")
	// ErrReservationInProgress - бронирование с тем же ключом идемпотентности еще выполняется
	ErrReservationInProgress = errors.New("reservation with this idempotency key is in progress")
)
