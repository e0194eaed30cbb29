package config

import "allegro/define"

var Config *define.Config

func IsValidBackendMode(mode string) bool {
	return mode == define.BackendSim || mode == define.BackendBridge
}

func IsValidHandType(handType string) bool {
	return handType == "left" || handType == "right"
}
