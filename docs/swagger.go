// Package docs Rail Booking Service API.
//
// Бэкенд бронирования железнодорожных билетов: станции, маршруты,
// поезда, экипаж, рейсы и заказы с атомарным бронированием мест.
//
// Основные возможности:
// - Справочники станций, маршрутов, поездов и экипажа
// - Рейсы с проверкой пересечений расписания поезда
// - Подсчет свободных мест по рейсам
// - Атомарное создание заказов с защитой от двойного бронирования
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-User-ID
//	     in: header
//
// swagger:meta
package docs
