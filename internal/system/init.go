package system

import "log"

var OpsChatID string
var RecruitmentChatID string

func Config() {
	cs := &ConfigSystem{}
	OpsChatID = cs.GetSettingCacheByKey("sys.telegram.ops.group").Value
	RecruitmentChatID = cs.GetSettingCacheByKey("sys.telegram.recruitment.group").Value

	log.Printf("telegram ops group: %s, recruitment group: %s", OpsChatID, RecruitmentChatID)
}
