// Package gradation строит кривую гранулометрического состава и считает
// характерные диаметры D10/D30/D50/D60 и коэффициенты Cu, Cc.
//
// Пакет чистый: без ввода-вывода и без общего состояния.
package gradation

import "errors"

var (
	// ErrInvalidCalibrationInput — неположительная или нечисловая калибровка.
	ErrInvalidCalibrationInput = errors.New("invalid calibration input")

	// ErrEmptyOrZeroWeightInput — нет строк сит или суммарная масса равна нулю.
	ErrEmptyOrZeroWeightInput = errors.New("empty or zero weight sieve input")

	// ErrInvalidSieveEntry — строка сита с неположительным размером ячейки
	// или отрицательной массой.
	ErrInvalidSieveEntry = errors.New("invalid sieve entry")

	// ErrInvalidPixelArea — площадь области не положительна или не число.
	ErrInvalidPixelArea = errors.New("invalid pixel area")
)
