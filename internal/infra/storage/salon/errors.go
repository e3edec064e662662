package salon

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon.repository: salon not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salon.repository: failed to build query")

	// ErrScanRow возвращается при ошибке выполнения запроса или сканирования результата
	ErrScanRow = errors.New("salon.repository: failed to scan row")

	// ErrInvalidHours возвращается, когда часы работы салона не удалось разобрать
	ErrInvalidHours = errors.New("salon.repository: invalid operating hours")
)
