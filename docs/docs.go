// Package docs registers the swagger document served at /swagger/*any. It is
// maintained by hand alongside the @-annotations in internal/handlers.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "201": {"description": "token, user, message", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "token, user, message", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Predefined categories",
                "responses": {
                    "200": {"description": "categories", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/seasons": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Seasons",
                "responses": {
                    "200": {"description": "seasons", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/wardrobe/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "User categories",
                "responses": {
                    "200": {"description": "categories", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "Add user category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.categoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "message, categories", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/wardrobe/clothes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "Add cloth",
                "parameters": [
                    {"description": "Cloth", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ClothRequest"}}
                ],
                "responses": {
                    "201": {"description": "message, cloth", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/wardrobe/clothes/{category}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "List clothes of a category",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "Season filter; 'all' or empty disables it", "name": "season", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "clothes", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.ClothingItem"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/wardrobe/clothes/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "Update cloth",
                "description": "Replaces every field; a missing body clears them. An empty category keeps the item where it is.",
                "parameters": [
                    {"type": "integer", "description": "Cloth id", "name": "id", "in": "path", "required": true},
                    {"description": "Replacement fields", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handlers.ClothRequest"}}
                ],
                "responses": {
                    "200": {"description": "message, cloth", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wardrobe"],
                "summary": "Delete cloth",
                "parameters": [
                    {"type": "integer", "description": "Cloth id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/wardrobe/ws": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Upgrades to a WebSocket and pushes {type:\"wardrobe\", data:{categories, shelves}} on every tick.",
                "tags": ["wardrobe"],
                "summary": "Wardrobe summary feed",
                "parameters": [
                    {"type": "string", "description": "Tick as Go duration, e.g. 2s (max 10s)", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Tick in milliseconds (max 10000)", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Cloth not found"}}
        },
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "pw123"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.categoryRequest": {
            "type": "object",
            "properties": {"category": {"type": "string", "example": "Shirts"}}
        },
        "handlers.ClothRequest": {
            "type": "object",
            "properties": {
                "category": {"description": "Target category; optional on update", "type": "string", "example": "Shirts"},
                "color": {"type": "string", "example": "blue"},
                "image": {"description": "Opaque image reference, stored as given", "type": "string", "example": "https://example.com/tee.png"},
                "name": {"type": "string", "example": "Tee"},
                "season": {"type": "string", "example": "Summer"}
            }
        },
        "models.ClothingItem": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "season": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wardrobe Catalog API",
	Description:      "Per-user clothing catalog: categories, seasons and items behind bearer tokens.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
