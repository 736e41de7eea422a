package docs

// @title LeetCode 代理服务 API
// @version 1.0
// @description 转发 LeetCode GraphQL 查询并维护本地用户名注册表
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3001
// @BasePath /
// @schemes http https
