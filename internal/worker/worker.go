package worker

import (
	"context"
)

// Worker - фоновый обработчик, читающий события из стрима
type Worker interface {
	// Start блокирует до остановки или ошибки обработчика
	Start(ctx context.Context) error

	// Stop сигнализирует обработчику о завершении
	Stop() error

	// Name возвращает имя обработчика
	Name() string
}
