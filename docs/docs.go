// Package docs registers the Swagger document served at /swagger.
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
        "/api/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Get public menu",
                "parameters": [
                    {"type": "string", "description": "Category filter", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/api/menu/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Get menu categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/api/menu/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Get menu item",
                "parameters": [
                    {"type": "string", "description": "Menu item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/members/access": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Members"],
                "summary": "Members access",
                "parameters": [
                    {"description": "Access code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.MembersAccessRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/members/menu": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Members"],
                "summary": "Get members menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Get cart",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Clear cart",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/api/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Add item to cart",
                "parameters": [
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddCartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/cart/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Submit order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Relay order",
                "parameters": [
                    {"description": "Order", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.OrderPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelayResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.RelayResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.RelayResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "models.RelayResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "models.MembersAccessRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}}
        },
        "models.AddCartItemRequest": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "isMembers": {"type": "boolean"},
                "quantity": {"type": "integer"}
            }
        },
        "models.CartLineItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "isMembers": {"type": "boolean"},
                "quantity": {"type": "integer"}
            }
        },
        "models.OrderPayload": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.CartLineItem"}},
                "totalItems": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "The Treehouse API",
	Description:      "Menu, session cart and order relay for The Treehouse.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
