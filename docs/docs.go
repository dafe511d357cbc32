// Package docs holds the OpenAPI description served at /swagger.
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
                "tags": [
                    "health"
                ],
                "summary": "Liveness",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Service is up"
                    },
                    "503": {
                        "description": "Database unavailable"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Logged in",
                        "schema": {
                            "$ref": "#/definitions/LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too many attempts",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Caller",
                        "schema": {
                            "$ref": "#/definitions/MeResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/missions": {
            "get": {
                "tags": [
                    "missions"
                ],
                "summary": "List missions",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Missions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Mission"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "missions"
                ],
                "summary": "Create a mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateMissionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/Mission"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/missions/{id}": {
            "get": {
                "tags": [
                    "missions"
                ],
                "summary": "Get a mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Mission",
                        "schema": {
                            "$ref": "#/definitions/Mission"
                        }
                    },
                    "404": {
                        "description": "Mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "missions"
                ],
                "summary": "Replace a mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateMissionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Mission",
                        "schema": {
                            "$ref": "#/definitions/Mission"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "missions"
                ],
                "summary": "Delete a mission and its daily missions",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/DeleteResponse"
                        }
                    },
                    "404": {
                        "description": "Mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/daily-missions": {
            "get": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "List daily missions",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Daily missions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DailyMissionDetail"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "Create a daily mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateDailyMissionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/DailyMission"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/daily-missions/mission/{missionId}": {
            "get": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "List daily missions of a mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "missionId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Daily missions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DailyMission"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/daily-missions/{id}": {
            "get": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "Get a daily mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Daily mission",
                        "schema": {
                            "$ref": "#/definitions/DailyMission"
                        }
                    },
                    "404": {
                        "description": "Daily mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "Replace a daily mission",
                "produces": [
                    "application/json"
                ],
                "description": "An omitted priority keeps the stored value",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateDailyMissionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Daily mission",
                        "schema": {
                            "$ref": "#/definitions/DailyMission"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Daily mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "daily-missions"
                ],
                "summary": "Delete a daily mission",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/DeleteResponse"
                        }
                    },
                    "404": {
                        "description": "Daily mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/today": {
            "get": {
                "tags": [
                    "today"
                ],
                "summary": "Actionable items for today",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/TodayItem"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/today/enhanced": {
            "get": {
                "tags": [
                    "today"
                ],
                "summary": "Actionable items for today",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/TodayItem"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/today/completed": {
            "get": {
                "tags": [
                    "today"
                ],
                "summary": "Items completed today",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DailyMissionDetail"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/today/summary": {
            "get": {
                "tags": [
                    "today"
                ],
                "summary": "Today counters",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Summary",
                        "schema": {
                            "$ref": "#/definitions/Summary"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        },
        "/today/quick-add": {
            "post": {
                "tags": [
                    "today"
                ],
                "summary": "Add a daily mission due today",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuickAddRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/DailyMission"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Mission not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    },
                    {
                        "IdentityHeader": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": [
                "username",
                "password"
            ],
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "user": {
                    "type": "object",
                    "properties": {
                        "username": {
                            "type": "string"
                        }
                    }
                },
                "token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string",
                    "example": "Bearer"
                },
                "expires_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "MeResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "user": {
                    "type": "object",
                    "properties": {
                        "username": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "Mission": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "completed",
                        "paused"
                    ]
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "target_completion_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "DailyMission": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "mission_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "completed",
                        "skipped"
                    ]
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "due_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "DailyMissionDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "mission_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "completed",
                        "skipped"
                    ]
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "due_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "mission_title": {
                    "type": "string"
                },
                "mission_status": {
                    "type": "string"
                }
            }
        },
        "TodayItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "mission_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "completed",
                        "skipped"
                    ]
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "due_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "mission_title": {
                    "type": "string"
                },
                "mission_status": {
                    "type": "string"
                },
                "task_status": {
                    "type": "string",
                    "enum": [
                        "overdue",
                        "today",
                        "future"
                    ]
                },
                "days_overdue": {
                    "type": "integer"
                },
                "urgency": {
                    "type": "string",
                    "enum": [
                        "none",
                        "warning",
                        "critical"
                    ]
                }
            }
        },
        "Summary": {
            "type": "object",
            "properties": {
                "pending": {
                    "type": "integer"
                },
                "overdue": {
                    "type": "integer"
                },
                "warning": {
                    "type": "integer"
                },
                "critical": {
                    "type": "integer"
                },
                "completed_today": {
                    "type": "integer"
                }
            }
        },
        "DeleteResponse": {
            "type": "object",
            "properties": {
                "deleted": {
                    "type": "boolean"
                }
            }
        },
        "CreateMissionRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "target_completion_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                }
            }
        },
        "UpdateMissionRequest": {
            "type": "object",
            "required": [
                "title",
                "status"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "completed",
                        "paused"
                    ]
                },
                "target_completion_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                }
            }
        },
        "CreateDailyMissionRequest": {
            "type": "object",
            "required": [
                "mission_id",
                "title"
            ],
            "properties": {
                "mission_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                }
            }
        },
        "UpdateDailyMissionRequest": {
            "type": "object",
            "required": [
                "title",
                "status"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "completed",
                        "skipped"
                    ]
                },
                "due_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-10-14"
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                }
            }
        },
        "QuickAddRequest": {
            "type": "object",
            "required": [
                "mission_id",
                "title"
            ],
            "properties": {
                "mission_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the token from /auth/login"
        },
        "IdentityHeader": {
            "type": "apiKey",
            "name": "X-Current-User",
            "in": "header",
            "description": "Legacy username header, when enabled"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Mission Tracker API",
	Description:      "Personal missions, daily missions and the today dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
