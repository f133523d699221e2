// Package docs RunAnywhere API.
//
// Регенерация: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/get_routes": {
            "get": {
                "description": "Ищет беговые сегменты в квадрате lat/long ± 0.01°. Точки сегментов в порядке [lng, lat].",
                "produces": ["application/json"],
                "tags": ["Segments"],
                "summary": "Сегменты рядом с точкой",
                "parameters": [
                    {"type": "number", "default": 0, "description": "Широта", "name": "lat", "in": "query"},
                    {"type": "number", "default": 0, "description": "Долгота", "name": "long", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.NearbySegmentsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Проверка свободного имени пользователя",
                "parameters": [
                    {"type": "string", "description": "Имя пользователя", "name": "username", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}}
                }
            }
        },
        "/save_route": {
            "get": {
                "description": "false, если пользователь не вошёл или bin_store пуст",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Сохранить route bin пользователя",
                "parameters": [
                    {"type": "string", "description": "Идентификатор bin", "name": "bin_store", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}}
                }
            }
        },
        "/get_saved": {
            "get": {
                "description": "id bin, null если ничего не сохранено, false если пользователь не вошёл",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Сохранённый route bin",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/bins": {
            "post": {
                "description": "Создаёт bin с одним сегментом",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["RouteBins"],
                "summary": "Создать route bin",
                "parameters": [
                    {"description": "Сегмент", "name": "segment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Segment"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RouteBinResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bins/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["RouteBins"],
                "summary": "Получить route bin",
                "parameters": [
                    {"type": "string", "description": "Bin ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RouteBinResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["RouteBins"],
                "summary": "Добавить сегмент в route bin",
                "parameters": [
                    {"type": "string", "description": "Bin ID", "name": "id", "in": "path", "required": true},
                    {"description": "Сегмент", "name": "segment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Segment"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RouteBinResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bins/{id}/gpx": {
            "get": {
                "produces": ["application/gpx+xml"],
                "tags": ["RouteBins"],
                "summary": "Экспорт route bin в GPX",
                "parameters": [
                    {"type": "string", "description": "Bin ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bins/{id}/connectors": {
            "get": {
                "description": "Для каждой пары соседних сегментов маршрут Mapbox walking от конца предыдущего до начала следующего",
                "produces": ["application/json"],
                "tags": ["RouteBins"],
                "summary": "Пешеходные связки между сегментами",
                "parameters": [
                    {"type": "string", "description": "Bin ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConnectorsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Segment": {
            "type": "object",
            "required": ["name", "points"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "avg_grade": {"type": "number"},
                "elev_difference": {"type": "string", "example": "152.8 m"},
                "distance": {"type": "string", "example": "2684.82 m"},
                "points": {"type": "array", "items": {"type": "array", "items": {"type": "number"}}}
            }
        },
        "dto.NearbySegmentsResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.Segment"}}
            }
        },
        "dto.RouteBinResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "segments": {"type": "array", "items": {"$ref": "#/definitions/dto.Segment"}},
                "total_distance_km": {"type": "number"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.Connector": {
            "type": "object",
            "properties": {
                "from": {"type": "integer"},
                "to": {"type": "integer"},
                "geometry": {"$ref": "#/definitions/domain.LineString"},
                "distance": {"type": "number"},
                "duration": {"type": "number"}
            }
        },
        "dto.ConnectorsResponse": {
            "type": "object",
            "properties": {
                "bin_id": {"type": "string"},
                "connectors": {"type": "array", "items": {"$ref": "#/definitions/dto.Connector"}}
            }
        },
        "domain.LineString": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "coordinates": {"type": "array", "items": {"type": "array", "items": {"type": "number"}}}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "RunAnywhere API",
	Description:      "Поиск беговых сегментов рядом с точкой на карте, учётные записи и route builder.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
