package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
)

func successNotice(locale string, title, message constant.MessageKey, args ...any) model.Notice {
	return model.Notice{
		Variant: model.NoticeSuccess,
		Title:   helper.Message(locale, title),
		Message: helper.Message(locale, message, args...),
	}
}

func errorNotice(locale string, title, message constant.MessageKey, args ...any) model.Notice {
	return model.Notice{
		Variant: model.NoticeError,
		Title:   helper.Message(locale, title),
		Message: helper.Message(locale, message, args...),
	}
}
