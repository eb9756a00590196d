package telegram

import (
	"context"

	app "gradation-bot/internal/application"
	"gradation-bot/internal/domain/entity"
)

// calibrate выполняет /calibrate. done сообщает, что масштаб уже посчитан;
// иначе сервис ждёт координаты линии. Неразборчивые аргументы — такая же
// неудачная калибровка, как нулевая длина.
func calibrate(ctx context.Context, images *app.ImageService, userID, chatID int64, args string) (scale entity.ScaleFactor, done bool, err error) {
	reference, p1, p2, withLine, err := parseCalibrateArgs(args)
	if err != nil {
		return 0, false, images.RejectCalibration(ctx, userID, chatID, err)
	}

	if !withLine {
		_, err := images.BeginCalibration(ctx, userID, chatID, reference)
		return 0, false, err
	}

	scale, err = images.Calibrate(ctx, userID, chatID, reference, p1, p2)
	if err != nil {
		return 0, false, err
	}
	return scale, true, nil
}
