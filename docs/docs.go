// Package docs holds the Swagger 2.0 description served under /swagger/*.
// It follows the handler annotations; `swag init -g cmd/server/main.go` regenerates it.
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
		"/auth/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.RegisterResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login with username or email",
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.AuthResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/refresh": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Refresh access token",
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RefreshRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.AuthResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Logout user",
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.LogoutRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/user": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get the signed in user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/posts": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "List posts",
				"parameters": [
					{
						"type": "integer",
						"description": "Only posts by this author",
						"name": "author_id",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 50, max 200)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.PostListResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Create a post",
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.PostRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.PostResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/posts/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Get a post",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Post"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Update a post",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.PostRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.PostResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Posts that still have comments cannot be deleted.",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Delete a post",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/posts/{id}/comments": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "List comments of a post",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Page size (default 50, max 200)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.CommentListResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Comment on a post",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CommentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.CommentResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		},
		"/posts/{id}/comments/{comment_id}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Update a comment",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "comment_id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CommentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.CommentResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Delete a comment",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "comment_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"errors.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.AuthResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"refresh_token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/model.User"
				}
			}
		},
		"handler.CommentListResponse": {
			"type": "object",
			"properties": {
				"comments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Comment"
					}
				}
			}
		},
		"handler.CommentRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			},
			"required": [
				"content"
			]
		},
		"handler.CommentResponse": {
			"type": "object",
			"properties": {
				"comment": {
					"$ref": "#/definitions/model.Comment"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			},
			"required": [
				"password"
			]
		},
		"handler.LogoutRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"handler.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handler.PostListResponse": {
			"type": "object",
			"properties": {
				"posts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Post"
					}
				}
			}
		},
		"handler.PostRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"title": {
					"type": "string",
					"maxLength": 255
				}
			},
			"required": [
				"content",
				"title"
			]
		},
		"handler.PostResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"post": {
					"$ref": "#/definitions/model.Post"
				}
			}
		},
		"handler.RefreshRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"handler.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"maxLength": 255
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"username": {
					"type": "string",
					"maxLength": 255
				}
			},
			"required": [
				"email",
				"password",
				"username"
			]
		},
		"handler.RegisterResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/model.User"
				}
			}
		},
		"model.Comment": {
			"type": "object",
			"properties": {
				"author_id": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"post_id": {
					"type": "integer"
				}
			}
		},
		"model.Post": {
			"type": "object",
			"properties": {
				"author_id": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				},
				"content_html": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"model.User": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Blog API",
	Description:      "Blog backend with user accounts, posts, comments, and JWT authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
