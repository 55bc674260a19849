// Package docs holds the OpenAPI document for the handler annotations.
// Refresh it with `go generate ./cmd/server` (runs swag init) after changing an annotation.
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
                "description": "Get the overall health status of the application including database connectivity",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Application is healthy",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Application is unhealthy",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Check if the application is alive and responding",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "Application is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Check if the application is ready to serve requests",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Application is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Application is not ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/objects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "objects"
                ],
                "summary": "List catalog objects",
                "responses": {
                    "200": {
                        "description": "Successfully retrieved objects",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.ObjectResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "objects"
                ],
                "summary": "Add an object to the catalog",
                "parameters": [
                    {
                        "description": "Object data",
                        "name": "object",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateObjectRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created object",
                        "schema": {
                            "$ref": "#/definitions/service.ObjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/objects/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "objects"
                ],
                "summary": "Get catalog object by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Object ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved object",
                        "schema": {
                            "$ref": "#/definitions/service.ObjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid object ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Object not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "put": {
                "description": "Overwrites name, width, height and color. Omitting color clears it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "objects"
                ],
                "summary": "Replace a catalog object",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Object ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Object data",
                        "name": "object",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdateObjectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully updated object",
                        "schema": {
                            "$ref": "#/definitions/service.ObjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Object not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "delete": {
                "description": "Placements of the object are deleted with it. Unknown ids succeed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "objects"
                ],
                "summary": "Delete a catalog object",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Object ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Object deleted"
                    },
                    "400": {
                        "description": "Invalid object ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/placements": {
            "get": {
                "description": "Every placement, flattened with the current attributes of its object",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "List all placements",
                "responses": {
                    "200": {
                        "description": "Successfully retrieved placements",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.PlacementResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "post": {
                "description": "Rotation defaults to 0. A missing room or object is reported as 400.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "Place an object in a room",
                "parameters": [
                    {
                        "description": "Placement data",
                        "name": "placement",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreatePlacementRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created placement",
                        "schema": {
                            "$ref": "#/definitions/service.PlacementResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request, or room/object not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/placements/room/{roomId}": {
            "get": {
                "description": "An unknown room returns an empty list",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "List placements in a room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room ID",
                        "name": "roomId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved placements",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.PlacementResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid room ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/placements/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "Get placement by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Placement ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved placement",
                        "schema": {
                            "$ref": "#/definitions/service.PlacementResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid placement ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Placement not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "put": {
                "description": "Overwrites x and y. Rotation changes only when supplied.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "Move a placement",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Placement ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Position data",
                        "name": "placement",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdatePlacementRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully updated placement",
                        "schema": {
                            "$ref": "#/definitions/service.PlacementResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Placement not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "delete": {
                "description": "Unknown ids succeed",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "placements"
                ],
                "summary": "Delete a placement",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Placement ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Placement deleted"
                    },
                    "400": {
                        "description": "Invalid placement ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/rooms": {
            "get": {
                "description": "Return every room ordered by id",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rooms"
                ],
                "summary": "List rooms",
                "responses": {
                    "200": {
                        "description": "Successfully retrieved rooms",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.RoomResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rooms"
                ],
                "summary": "Create a room",
                "parameters": [
                    {
                        "description": "Room data",
                        "name": "room",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateRoomRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created room",
                        "schema": {
                            "$ref": "#/definitions/service.RoomResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/rooms/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rooms"
                ],
                "summary": "Get room by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved room",
                        "schema": {
                            "$ref": "#/definitions/service.RoomResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid room ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Room not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "put": {
                "description": "Overwrites name, length and width. All fields are required.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rooms"
                ],
                "summary": "Replace a room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Room data",
                        "name": "room",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdateRoomRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully updated room",
                        "schema": {
                            "$ref": "#/definitions/service.RoomResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request or validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Room not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes the room and every placement inside it. Unknown ids succeed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rooms"
                ],
                "summary": "Delete a room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Room deleted"
                    },
                    "400": {
                        "description": "Invalid room ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "services": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "service.CreateObjectRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#D2691E"
                },
                "height": {
                    "type": "number",
                    "example": 2
                },
                "name": {
                    "type": "string",
                    "maxLength": 200,
                    "example": "Desk"
                },
                "width": {
                    "type": "number",
                    "example": 4
                }
            }
        },
        "service.CreatePlacementRequest": {
            "type": "object",
            "required": [
                "objectId",
                "roomId",
                "x",
                "y"
            ],
            "properties": {
                "objectId": {
                    "type": "integer",
                    "example": 2
                },
                "roomId": {
                    "type": "integer",
                    "example": 1
                },
                "rotation": {
                    "type": "number",
                    "example": 90
                },
                "x": {
                    "type": "number",
                    "example": 1
                },
                "y": {
                    "type": "number",
                    "example": 2
                }
            }
        },
        "service.CreateRoomRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "length": {
                    "type": "number",
                    "example": 12
                },
                "name": {
                    "type": "string",
                    "maxLength": 200,
                    "example": "Dorm A"
                },
                "width": {
                    "type": "number",
                    "example": 10
                }
            }
        },
        "service.ObjectResponse": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "objectId": {
                    "type": "integer"
                },
                "width": {
                    "type": "number"
                }
            }
        },
        "service.PlacementResponse": {
            "type": "object",
            "properties": {
                "objectColor": {
                    "type": "string"
                },
                "objectHeight": {
                    "type": "number"
                },
                "objectId": {
                    "type": "integer"
                },
                "objectName": {
                    "type": "string"
                },
                "objectWidth": {
                    "type": "number"
                },
                "placementId": {
                    "type": "integer"
                },
                "roomId": {
                    "type": "integer"
                },
                "rotation": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "service.RoomResponse": {
            "type": "object",
            "properties": {
                "length": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "roomId": {
                    "type": "integer"
                },
                "width": {
                    "type": "number"
                }
            }
        },
        "service.UpdateObjectRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#D2691E"
                },
                "height": {
                    "type": "number",
                    "example": 2
                },
                "name": {
                    "type": "string",
                    "maxLength": 200,
                    "example": "Desk"
                },
                "width": {
                    "type": "number",
                    "example": 4
                }
            }
        },
        "service.UpdatePlacementRequest": {
            "type": "object",
            "required": [
                "x",
                "y"
            ],
            "properties": {
                "rotation": {
                    "type": "number",
                    "example": 180
                },
                "x": {
                    "type": "number",
                    "example": 5
                },
                "y": {
                    "type": "number",
                    "example": 5
                }
            }
        },
        "service.UpdateRoomRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "length": {
                    "type": "number",
                    "example": 12
                },
                "name": {
                    "type": "string",
                    "maxLength": 200,
                    "example": "Dorm A"
                },
                "width": {
                    "type": "number",
                    "example": 10
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Course Cluster Backend API",
	Description:      "Backend API for the room layout planner: rooms, a furniture catalog and placements of catalog objects inside rooms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
