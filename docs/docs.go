// Package docs 注册 /swagger/doc.json 使用的 swagger 文档。
//
// 内容与 handlers 中的 godoc 注解逐条对应，修改注解后需同步更新本文件。
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/add-user": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "注册表"
                ],
                "summary": "登记一个用户名",
                "parameters": [
                    {
                        "description": "用户名",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AddUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "登记成功",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "缺少 username",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "用户名已存在（仅在开启唯一性策略时）",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "数据库错误",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "进程存活即返回 200，database 字段反映注册表数据库是否可达",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "系统"
                ],
                "summary": "健康检查",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        },
        "/leetcode/ids": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "注册表"
                ],
                "summary": "列出已登记的用户名",
                "responses": {
                    "200": {
                        "description": "注册表全部行",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.UsernameRecord"
                            }
                        }
                    },
                    "500": {
                        "description": "数据库错误",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/leetcode/problems": {
            "get": {
                "description": "limit 无法解析时回退到默认值 20",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "LeetCode"
                ],
                "summary": "获取最近通过的题目",
                "parameters": [
                    {
                        "type": "string",
                        "description": "LeetCode 用户名",
                        "name": "username",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "返回条数",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "最近通过的提交",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.RecentSubmission"
                            }
                        }
                    },
                    "400": {
                        "description": "缺少 username",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "上游请求失败",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/leetcode/profile": {
            "get": {
                "description": "查询 matchedUser 的个人资料、竞赛徽章和社交链接",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "LeetCode"
                ],
                "summary": "获取用户公开资料",
                "parameters": [
                    {
                        "type": "string",
                        "description": "LeetCode 用户名",
                        "name": "username",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "matchedUser 对象",
                        "schema": {
                            "$ref": "#/definitions/models.MatchedUserProfile"
                        }
                    },
                    "400": {
                        "description": "缺少 username",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "上游请求失败",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/leetcode/skills": {
            "get": {
                "description": "按 advanced / intermediate / fundamental 三档分组的标签解题数",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "LeetCode"
                ],
                "summary": "获取技能标签统计",
                "parameters": [
                    {
                        "type": "string",
                        "description": "LeetCode 用户名",
                        "name": "username",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "matchedUser.tagProblemCounts",
                        "schema": {
                            "$ref": "#/definitions/models.SkillsResponse"
                        }
                    },
                    "400": {
                        "description": "缺少 username",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "上游请求失败",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/leetcode/stats": {
            "get": {
                "description": "全站题目数量以及该用户按难度的通过数和击败百分比",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "LeetCode"
                ],
                "summary": "获取做题统计",
                "parameters": [
                    {
                        "type": "string",
                        "description": "LeetCode 用户名",
                        "name": "username",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "allQuestionsCount + matchedUser",
                        "schema": {
                            "$ref": "#/definitions/models.StatsResponse"
                        }
                    },
                    "400": {
                        "description": "缺少 username",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "上游请求失败",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.AddUserRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "alice"
                }
            }
        },
        "models.ContestBadge": {
            "type": "object",
            "properties": {
                "expired": {
                    "type": "boolean",
                    "example": false
                },
                "hoverText": {
                    "type": "string",
                    "example": "Knight"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "example": "Knight"
                }
            }
        },
        "models.DifficultyCount": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "example": 120
                },
                "difficulty": {
                    "type": "string",
                    "example": "Easy"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Failed to fetch data"
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "string",
                    "example": "up"
                },
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "models.MatchedUserProfile": {
            "type": "object",
            "properties": {
                "contestBadge": {
                    "$ref": "#/definitions/models.ContestBadge"
                },
                "githubUrl": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "profile": {
                    "type": "object",
                    "additionalProperties": true
                },
                "twitterUrl": {
                    "type": "string"
                },
                "username": {
                    "type": "string",
                    "example": "alice"
                }
            }
        },
        "models.RecentSubmission": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "1234567"
                },
                "timestamp": {
                    "type": "string",
                    "example": "1700000000"
                },
                "title": {
                    "type": "string",
                    "example": "Two Sum"
                },
                "titleSlug": {
                    "type": "string",
                    "example": "two-sum"
                }
            }
        },
        "models.SkillsResponse": {
            "type": "object",
            "properties": {
                "matchedUser": {
                    "type": "object",
                    "properties": {
                        "tagProblemCounts": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "models.StatsResponse": {
            "type": "object",
            "properties": {
                "allQuestionsCount": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DifficultyCount"
                    }
                },
                "matchedUser": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "models.UsernameRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "username": {
                    "type": "string",
                    "example": "alice"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "LeetCode 代理服务 API",
	Description:      "转发 LeetCode GraphQL 查询并维护本地用户名注册表",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
