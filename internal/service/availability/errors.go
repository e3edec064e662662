package availability

import "errors"

var (
	// ErrUpstreamUnavailable возвращается, когда не удалось прочитать данные коллаборатора
	// Такой сбой нельзя трактовать как "нет записей": это дало бы ложную доступность
	ErrUpstreamUnavailable = errors.New("availability: upstream unavailable")
)
