// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/main.go`.
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
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "description": "Verifies the password and sets the session cookie.",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/words": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wordbook.CategoryList"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wordbook.CategoryInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/wordbook.Category"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/words/{category_id}": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "List words of a category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wordbook.WordList"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "Add a word",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true},
                    {"description": "Word", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wordbook.CreateWord"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/wordbook.Word"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Rename category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true},
                    {"description": "New name (null clears it)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wordbook.CategoryInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wordbook.Category"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Delete category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/words/{category_id}/{word_id}": {
            "delete": {
                "security": [{"SessionCookie": []}],
                "tags": ["words"],
                "summary": "Delete a word",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Word ID", "name": "word_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/ws": {
            "get": {
                "security": [{"SessionCookie": []}],
                "tags": ["categories"],
                "summary": "Category feed",
                "parameters": [
                    {"type": "string", "example": "2s", "description": "Push interval as a Go duration, at most 10s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Push interval in milliseconds, at most 10000", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "wordbook.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "num_words": {"type": "integer"},
                "sample_words": {"type": "array", "items": {"type": "string"}}
            }
        },
        "wordbook.CategoryInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "wordbook.CategoryList": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/wordbook.Category"}}
            }
        },
        "wordbook.CreateWord": {
            "type": "object",
            "required": ["word"],
            "properties": {
                "word": {"type": "string"}
            }
        },
        "wordbook.Word": {
            "type": "object",
            "properties": {
                "category_id": {"type": "integer"},
                "id": {"type": "integer"},
                "word": {"type": "string"}
            }
        },
        "wordbook.WordList": {
            "type": "object",
            "properties": {
                "words": {"type": "array", "items": {"$ref": "#/definitions/wordbook.Word"}}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "type": "apiKey",
            "name": "pss_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wordbook API",
	Description:      "Per-user word categories behind cookie sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
