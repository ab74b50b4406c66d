package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
)

func (s *BursaryService) ExportPriorityList(ctx context.Context, req *bursarypb.ExportPriorityListRequest) (*bursarypb.ExportPriorityListResponse, error) {
	xlsx, rows, err := s.exporter.ExportPriorityListXLSX(ctx, req.GetCounty())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "county", req.GetCounty(), "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	outPath := req.GetOutputPath()
	if outPath == "" {
		outPath = filepath.Join(os.TempDir(),
			fmt.Sprintf("priority-list-%s.xlsx", time.Now().Format("20060102-150405")))
	}
	if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
		s.logger.Error("export.write.failed", "path", outPath, "err", err)
		return nil, status.Errorf(codes.Internal, "write export: %v", err)
	}

	return &bursarypb.ExportPriorityListResponse{
		FilePath: outPath,
		RowCount: int32(rows),
	}, nil
}
