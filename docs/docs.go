// Package docs registers the OpenAPI document served at /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["meta"],
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error or duplicate username"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid username or password"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Missing or invalid token"}, "404": {"description": "User not found"}}
            }
        },
        "/posts": {
            "get": {
                "tags": ["posts"],
                "summary": "List posts",
                "parameters": [
                    {"type": "integer", "in": "query", "name": "page"},
                    {"type": "integer", "in": "query", "name": "limit"},
                    {"type": "string", "in": "query", "name": "status"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["posts"],
                "summary": "Create a post",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post", "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["posts"], "summary": "Update a post", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["posts"], "summary": "Delete a post", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/projects": {
            "get": {"tags": ["projects"], "summary": "List projects", "parameters": [{"type": "string", "in": "query", "name": "status"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["projects"], "summary": "Create a project", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/projects/{id}": {
            "get": {"tags": ["projects"], "summary": "Get a project", "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["projects"], "summary": "Update a project", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["projects"], "summary": "Delete a project", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "All site settings", "responses": {"200": {"description": "OK"}}}
        },
        "/settings/{key}": {
            "get": {"tags": ["settings"], "summary": "One setting", "parameters": [{"type": "string", "in": "path", "name": "key", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["settings"], "summary": "Create or replace a setting", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "in": "path", "name": "key", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "credentials": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pixel World Portfolio API",
	Description:      "Posts, projects and site settings behind bearer-token auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
