// Package docs Vault API 的 Swagger 文档，随 api 包注解一同维护
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
        "/api/v1/analysis": {
            "get": {
                "description": "返回当前月份的日均支出、可维持天数、建议和各类别占比",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "分析"
                ],
                "summary": "获取财务分析",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.AnalysisResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "description": "返回六个固定支出类别，顺序即展示顺序",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "分析"
                ],
                "summary": "获取支出类别",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Category"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/export/csv": {
            "get": {
                "description": "导出指定月份的全部账目",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "导出"
                ],
                "summary": "导出账目（CSV）",
                "parameters": [
                    {
                        "type": "string",
                        "description": "月份 (2024-01)，默认为看板当前月份",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "CSV 文件",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "查询失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/export/excel": {
            "get": {
                "description": "导出指定月份的账目明细、汇总、类别占比和目标进度",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "导出"
                ],
                "summary": "导出月度报表（Excel）",
                "parameters": [
                    {
                        "type": "string",
                        "description": "月份 (2024-01)，默认为看板当前月份",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Excel 文件",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "生成失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/goals": {
            "get": {
                "description": "按创建时间正序返回全部目标，百分比范围 0-100",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "储蓄目标"
                ],
                "summary": "获取储蓄目标",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/ledger.GoalView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "description": "新建目标，初始金额为 0；颜色为空时使用默认颜色",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "储蓄目标"
                ],
                "summary": "新建储蓄目标",
                "parameters": [
                    {
                        "description": "目标",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.GoalInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Goal"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "保存失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/goals/colors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "储蓄目标"
                ],
                "summary": "获取目标可选颜色",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/reports/monthly": {
            "post": {
                "description": "立即生成指定月份的报告，通过邮件发送并附带 Excel 报表",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "报告"
                ],
                "summary": "发送月度报告",
                "parameters": [
                    {
                        "type": "string",
                        "description": "月份 (2024-01)，默认为看板当前月份",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "发送成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.Summary"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "发送失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/state": {
            "get": {
                "description": "返回当前月份的汇总、类别分布、最近账目、目标进度和分析数据",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "获取看板状态",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/state/goal": {
            "put": {
                "description": "选择 Ahorro 类账目默认存入或取出的目标",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "选择储蓄目标",
                "parameters": [
                    {
                        "description": "目标",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SelectGoalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "选择成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "目标不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/state/month": {
            "put": {
                "description": "按 month（2006-01）或 offset 切换月份，并重新加载账目和目标",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "切换月份",
                "parameters": [
                    {
                        "description": "月份",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.MonthRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "切换成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "加载失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/state/refresh": {
            "post": {
                "description": "并发重新加载当前月份账目和全部目标",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "重新加载",
                "responses": {
                    "200": {
                        "description": "加载成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "加载失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/state/search": {
            "put": {
                "description": "按描述过滤账目，不区分大小写，空字符串清除过滤",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "搜索历史记录",
                "parameters": [
                    {
                        "description": "关键字",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "设置成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/state/view": {
            "put": {
                "description": "在 dashboard / history / goals / analysis 之间切换",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "看板"
                ],
                "summary": "切换视图",
                "parameters": [
                    {
                        "description": "视图",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.ViewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "切换成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/ledger.ViewModel"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "未知视图",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/transactions": {
            "get": {
                "description": "返回当前月份的账目（按时间倒序）；不传 q 时使用看板当前的搜索关键字",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "账目"
                ],
                "summary": "获取账目列表",
                "parameters": [
                    {
                        "type": "string",
                        "description": "描述关键字",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Transaction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "description": "新增收入、支出或储蓄（Ahorro）。储蓄存入记为支出，取出记为收入，并同步调整目标金额",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "账目"
                ],
                "summary": "新增账目",
                "parameters": [
                    {
                        "description": "账目",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.TransactionInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Transaction"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "目标不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "保存失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/transactions/{id}": {
            "delete": {
                "description": "按 ID 删除账目，不可撤销",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "账目"
                ],
                "summary": "删除账目",
                "parameters": [
                    {
                        "type": "string",
                        "description": "账目ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "删除成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "账目不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "500": {
                        "description": "删除失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.AnalysisResponse": {
            "type": "object",
            "properties": {
                "analisis": {
                    "$ref": "#/definitions/ledger.Analysis"
                },
                "mes": {
                    "type": "string",
                    "example": "2024-01"
                },
                "resumen": {
                    "$ref": "#/definitions/ledger.Summary"
                }
            }
        },
        "api.MonthRequest": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string",
                    "example": "2024-01"
                },
                "offset": {
                    "type": "integer",
                    "example": -1
                }
            }
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "api.SearchRequest": {
            "type": "object",
            "properties": {
                "q": {
                    "type": "string",
                    "example": "uber"
                }
            }
        },
        "api.SelectGoalRequest": {
            "type": "object",
            "required": [
                "goal_id"
            ],
            "properties": {
                "goal_id": {
                    "type": "string"
                }
            }
        },
        "api.ViewRequest": {
            "type": "object",
            "required": [
                "view"
            ],
            "properties": {
                "view": {
                    "type": "string",
                    "example": "analysis"
                }
            }
        },
        "ledger.Advice": {
            "type": "object",
            "properties": {
                "mensaje": {
                    "type": "string"
                },
                "saludable": {
                    "type": "boolean"
                },
                "sugerido": {
                    "type": "integer",
                    "description": "Suggested 建议转入投资的金额，仅在结余非负时有值"
                },
                "titulo": {
                    "type": "string"
                }
            }
        },
        "ledger.Analysis": {
            "type": "object",
            "properties": {
                "autonomia": {
                    "type": "string"
                },
                "autonomia_dias": {
                    "type": "integer",
                    "description": "RunwayDays 为 nil 表示没有支出（∞）"
                },
                "consejo": {
                    "$ref": "#/definitions/ledger.Advice"
                },
                "mapa_gastos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.CategorySlice"
                    }
                },
                "promedio_diario": {
                    "type": "integer"
                }
            }
        },
        "ledger.CategorySlice": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string"
                },
                "icono": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "porcentaje": {
                    "type": "integer"
                },
                "valor": {
                    "type": "integer"
                }
            }
        },
        "ledger.GoalInput": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#10b981"
                },
                "nombre": {
                    "type": "string",
                    "example": "Viaje a Japón"
                },
                "objetivo": {
                    "type": "string",
                    "example": "1.500.000"
                }
            }
        },
        "ledger.GoalView": {
            "type": "object",
            "properties": {
                "actual": {
                    "type": "integer",
                    "description": "不会小于 0"
                },
                "color": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "integer"
                },
                "porcentaje": {
                    "type": "integer"
                },
                "seleccionada": {
                    "type": "boolean"
                }
            }
        },
        "ledger.Summary": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "integer"
                },
                "gastos": {
                    "type": "integer"
                },
                "ingresos": {
                    "type": "integer"
                },
                "tasa_ahorro": {
                    "type": "integer",
                    "description": "百分比，可为负"
                }
            }
        },
        "ledger.TransactionInput": {
            "type": "object",
            "properties": {
                "categoria": {
                    "type": "string",
                    "example": "comida"
                },
                "concepto": {
                    "type": "string",
                    "example": "Café"
                },
                "meta_destino": {
                    "type": "string",
                    "description": "仅 Ahorro 使用，为空时使用当前选中的目标"
                },
                "monto": {
                    "type": "string",
                    "description": "带千位分隔符的整数金额",
                    "example": "3.500"
                },
                "retiro": {
                    "type": "boolean",
                    "description": "仅 Ahorro 使用，true 表示从目标取出"
                },
                "tipo": {
                    "type": "string",
                    "description": "Gasto / Ingreso / Ahorro",
                    "example": "Gasto"
                }
            }
        },
        "ledger.View": {
            "type": "string",
            "enum": [
                "dashboard",
                "history",
                "goals",
                "analysis"
            ],
            "x-enum-varnames": [
                "ViewDashboard",
                "ViewHistory",
                "ViewGoals",
                "ViewAnalysis"
            ]
        },
        "ledger.ViewModel": {
            "type": "object",
            "properties": {
                "analisis": {
                    "$ref": "#/definitions/ledger.Analysis"
                },
                "busqueda": {
                    "type": "string"
                },
                "cargando": {
                    "type": "boolean"
                },
                "desglose": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.CategorySlice"
                    }
                },
                "mes": {
                    "type": "string"
                },
                "meta_destino": {
                    "type": "string"
                },
                "metas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.GoalView"
                    }
                },
                "movimientos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "notificacion": {
                    "type": "string"
                },
                "recientes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "resumen": {
                    "$ref": "#/definitions/ledger.Summary"
                },
                "vista": {
                    "$ref": "#/definitions/ledger.View"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string"
                },
                "icono": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                }
            }
        },
        "models.Goal": {
            "type": "object",
            "properties": {
                "actual": {
                    "type": "integer",
                    "description": "不会小于 0"
                },
                "color": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "integer"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "categoria": {
                    "type": "string"
                },
                "concepto": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "monto": {
                    "type": "integer"
                },
                "tipo": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vault API",
	Description:      "个人财务看板：收支记录、储蓄目标和月度分析",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
