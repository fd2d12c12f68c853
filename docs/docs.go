// Package docs registra la especificación OpenAPI para /swagger.
//
// Regenerar con: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/events/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Listar eventos",
                "parameters": [
                    {"type": "string", "description": "Filtrar por mes (YYYY-MM)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Máximo de eventos a devolver", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "listado", "schema": {"type": "string"}},
                    "400": {"description": "mes inválido", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["text/plain"],
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Crear evento",
                "parameters": [
                    {"description": "date|title|text", "name": "payload", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "201": {"description": "ID del evento creado", "schema": {"type": "string"}},
                    "400": {"description": "registro mal formado / validación", "schema": {"type": "string"}},
                    "409": {"description": "la fecha ya tiene un evento", "schema": {"type": "string"}},
                    "413": {"description": "cuerpo mayor a 1MB", "schema": {"type": "string"}}
                }
            }
        },
        "/events/{eventID}/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Obtener evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "id|date|title|text", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "consumes": ["text/plain"],
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Actualizar evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true},
                    {"description": "date|title|text", "name": "payload", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "updated", "schema": {"type": "string"}},
                    "400": {"description": "registro mal formado / validación", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}},
                    "409": {"description": "la fecha ya tiene un evento", "schema": {"type": "string"}},
                    "413": {"description": "cuerpo mayor a 1MB", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Borrar evento",
                "parameters": [
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "deleted", "schema": {"type": "string"}}
                }
            }
        },
        "/events/by-date/{date}/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Obtener evento por fecha",
                "parameters": [
                    {"type": "string", "description": "Fecha YYYY-MM-DD", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "id|date|title|text", "schema": {"type": "string"}},
                    "400": {"description": "fecha inválida", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}}
                }
            }
        },
        "/events/availability/{date}/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["events"],
                "summary": "Consultar si una fecha está libre",
                "parameters": [
                    {"type": "string", "description": "Fecha YYYY-MM-DD", "name": "date", "in": "path", "required": true},
                    {"type": "string", "description": "ID de evento a ignorar (edición)", "name": "exclude", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "true / false", "schema": {"type": "string"}}
                }
            }
        },
        "/events.ics": {
            "get": {
                "produces": ["text/calendar"],
                "tags": ["events"],
                "summary": "Exportar calendario ICS",
                "responses": {
                    "200": {"description": "VCALENDAR", "schema": {"type": "string"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Events Calendar API",
	Description:      "API de eventos: un evento por fecha, cuerpos text/plain `id|date|title|text`.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
