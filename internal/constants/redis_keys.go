package constants

// Redis Key 前缀和格式常量
// 统一命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// DocumentModulePrefix 文档模块
	DocumentModulePrefix = "document"
	// ProfileModulePrefix 档案模块
	ProfileModulePrefix = "profile"

	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntityMD5ToUUID MD5到文档UUID的映射实体
	EntityMD5ToUUID = "md5_to_uuid"
	// EntityData 档案数据实体
	EntityData = "data"

	// KeyTextMD5Set 提取文本MD5集合，用于内容去重 (SET)
	// 格式: app:document:dedup_set
	KeyTextMD5Set = AppPrefix + ":" + DocumentModulePrefix + ":" + EntityDedupSet

	// KeyMD5ToDocumentUUID MD5到文档UUID的映射 (STRING)
	// 格式: app:document:md5_to_uuid:{md5}
	KeyMD5ToDocumentUUID = AppPrefix + ":" + DocumentModulePrefix + ":" + EntityMD5ToUUID + ":%s"

	// KeyProfileData 档案数据缓存 (STRING)
	// 格式: app:profile:data:{documentUUID}
	KeyProfileData = AppPrefix + ":" + ProfileModulePrefix + ":" + EntityData + ":%s"
)
