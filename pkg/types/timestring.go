package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString представляет время суток в формате "HH:MM".
// Внутри все вычисления выполняются в минутах с начала суток.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes создает TimeString из количества минут с начала суток.
// Значение 1440 ("24:00") допустимо как эксклюзивная граница интервала.
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m > 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не установлено
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM" (00:00 - 23:59)
func (t TimeString) Validate() error {
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hh, &mm); err != nil || len(t) != 5 || t[2] != ':' {
		return ErrInvalidTimeString
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hh, &mm); err != nil {
		return 0, ErrInvalidTimeString
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 {
		return 0, ErrInvalidTimeString
	}
	return hh*60 + mm, nil
}

// AddMinutes возвращает время, сдвинутое на delta минут вперед.
// Результат не может выходить за пределы суток (максимум "24:00").
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + delta)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	m1, err1 := t.Minutes()
	m2, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return m1 < m2
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	m1, err1 := t.Minutes()
	m2, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return m1 > m2
}

// Scan реализует sql.Scanner (колонка хранится как text)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
