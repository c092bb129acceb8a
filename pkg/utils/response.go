package utils

import (
	"log"
	"net/http"
)

// RespondJSON 发送已编码的JSON响应体
func RespondJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// RespondText 发送纯文本响应，用于简短的诊断信息
func RespondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// RespondError 发送通用的服务端错误
func RespondError(w http.ResponseWriter) {
	RespondText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
