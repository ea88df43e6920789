// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-job-board/models"
)

// renderBuildInfoWindow shows the client build and, once fetched, the
// server build.
func renderBuildInfoWindow(info models.AppBuildInfo, server *models.VersionResponse, serverErr string) string {
	var b strings.Builder

	b.WriteString("Название приложения: Job Board\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Сервер: ")
	switch {
	case server != nil:
		b.WriteString(valueOrNA(server.Version))
		b.WriteString(" (")
		b.WriteString(valueOrNA(server.Date))
		b.WriteString(", ")
		b.WriteString(valueOrNA(server.Commit))
		b.WriteString(")")
	case serverErr != "":
		b.WriteString(serverErr)
	default:
		b.WriteString("загрузка...")
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
