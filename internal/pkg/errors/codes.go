package errors

import "net/http"

var (
	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Маршрут не найден",
		http.StatusNotFound,
	)

	ErrRouteDateNotFound = New(
		"ROUTE_DATE_NOT_FOUND",
		"Дата не найдена",
		http.StatusNotFound,
	)

	ErrRouteDateExists = New(
		"ROUTE_DATE_EXISTS",
		"Дата уже добавлена",
		http.StatusConflict,
	)

	ErrRouteDateBooked = New(
		"ROUTE_DATE_BOOKED",
		"Нельзя удалить забронированную дату",
		http.StatusBadRequest,
	)

	ErrBookingNotFound = New(
		"BOOKING_NOT_FOUND",
		"Заявка не найдена",
		http.StatusNotFound,
	)

	ErrBookingCodeConflict = New(
		"BOOKING_CODE_CONFLICT",
		"Не удалось выдать код заявки, попробуйте ещё раз",
		http.StatusConflict,
	)

	ErrConsentRequired = New(
		"CONSENT_REQUIRED",
		"Требуется согласие на обработку данных",
		http.StatusBadRequest,
	)

	ErrTooManyParticipants = New(
		"TOO_MANY_PARTICIPANTS",
		"Количество участников превышает вместимость группы",
		http.StatusBadRequest,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"Пользователь не найден",
		http.StatusNotFound,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email уже используется",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Неверный логин или пароль",
		http.StatusBadRequest,
	)

	ErrUserBlocked = New(
		"USER_BLOCKED",
		"Пользователь заблокирован",
		http.StatusForbidden,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Недействительный токен",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Требуется авторизация",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Недостаточно прав",
		http.StatusForbidden,
	)

	ErrRuleNotFound = New(
		"RULE_NOT_FOUND",
		"Правило не найдено",
		http.StatusNotFound,
	)

	ErrRuleCodeTaken = New(
		"RULE_CODE_TAKEN",
		"Код правила уже используется",
		http.StatusBadRequest,
	)

	ErrRuleTitleTaken = New(
		"RULE_TITLE_TAKEN",
		"Название правила уже используется",
		http.StatusBadRequest,
	)

	ErrTariffNotFound = New(
		"TARIFF_NOT_FOUND",
		"Тариф не найден",
		http.StatusNotFound,
	)

	ErrTariffTitleTaken = New(
		"TARIFF_TITLE_TAKEN",
		"Название тарифа уже используется",
		http.StatusBadRequest,
	)

	ErrReviewNotFound = New(
		"REVIEW_NOT_FOUND",
		"Отзыв не найден",
		http.StatusNotFound,
	)

	ErrExcursionNotFound = New(
		"EXCURSION_NOT_FOUND",
		"Экскурсия не найдена",
		http.StatusNotFound,
	)

	ErrDraftNotFound = New(
		"DRAFT_NOT_FOUND",
		"Черновик не найден",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Некорректные координаты",
		http.StatusBadRequest,
	)

	ErrEmptyFile = New(
		"EMPTY_FILE",
		"Файл не выбран",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Некорректные параметры запроса",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Ошибка при обращении к базе данных",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Ошибка при обращении к кешу",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Внутренняя ошибка сервера",
		http.StatusInternalServerError,
	)
)
