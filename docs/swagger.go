// Package docs Excursion Service API.
//
// Сервис бронирования авторских экскурсий. Предоставляет API витрины
// (каталог маршрутов, заявки на бронирование, отзывы участников) и
// административной панели (конструктор маршрутов, даты проведения,
// сотрудники, правила доступа, тарифы, модерация отзывов).
//
// Основные возможности:
// - Каталог опубликованных маршрутов с геометрией для карты
// - Конструктор маршрутов с сессиями редактирования и статистикой
// - Заявки на бронирование со сквозной нумерацией кодов
// - Отзывы участников с подтверждением кодом бронирования
// - Журнал аудита действий сотрудников
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
