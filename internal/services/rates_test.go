package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/encoders"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestRateService_CreateRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saver := NewMockRateSaver(ctrl)
	cache := NewMockLatestRateCache(ctrl)
	exporter := NewMockBackupExporter(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	rates := testRates()
	backupReq := models.BackupRequest(encoders.DefaultFormat)

	saver.EXPECT().Save(gomock.Any(), rates).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	exporter.EXPECT().Export(gomock.Any(), backupReq).Return(nil, nil)

	svc := NewRateService(saver, nil, nil, cache, exporter, writer)
	require.NoError(t, svc.CreateRates(context.Background(), rates))
}

func TestRateService_CreateRates_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saver := NewMockRateSaver(ctrl)
	exporter := NewMockBackupExporter(ctrl)

	saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	// no side effects when the mutation itself fails

	svc := NewRateService(saver, nil, nil, nil, exporter, nil)
	require.Error(t, svc.CreateRates(context.Background(), testRates()))
}

func TestRateService_CreateRates_BackupFailureDoesNotFailMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saver := NewMockRateSaver(ctrl)
	exporter := NewMockBackupExporter(ctrl)

	saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage down"))

	svc := NewRateService(saver, nil, nil, nil, exporter, nil)
	require.NoError(t, svc.CreateRates(context.Background(), testRates()))
}

func TestRateService_CreateRates_NoKafkaNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saver := NewMockRateSaver(ctrl)
	exporter := NewMockBackupExporter(ctrl)

	saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewRateService(saver, nil, nil, nil, exporter, nil)
	require.NoError(t, svc.CreateRates(context.Background(), testRates()))
}

func TestRateService_DeleteRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockRateRemover(ctrl)
	cache := NewMockLatestRateCache(ctrl)
	exporter := NewMockBackupExporter(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	ids := []int64{1, 2, 3}
	remover.EXPECT().Delete(gomock.Any(), ids).Return(int64(2), nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	exporter.EXPECT().Export(gomock.Any(), models.BackupRequest(encoders.DefaultFormat)).Return(nil, nil)

	svc := NewRateService(nil, remover, nil, cache, exporter, writer)
	deleted, err := svc.DeleteRates(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestRateService_DeleteRates_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockRateRemover(ctrl)
	exporter := NewMockBackupExporter(ctrl)

	remover.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("delete failed"))

	svc := NewRateService(nil, remover, nil, nil, exporter, nil)
	_, err := svc.DeleteRates(context.Background(), []int64{7})
	require.Error(t, err)
}

func TestRateService_LatestRates_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockLatestLister(ctrl)
	cache := NewMockLatestRateCache(ctrl)

	cached := []models.LatestRate{{LetterCode: "USD", ExchangeRate: 92.5}}
	cache.EXPECT().Get(gomock.Any()).Return(cached, nil)
	// repository is not touched on a cache hit

	svc := NewRateService(nil, nil, lister, cache, nil, nil)
	rates, err := svc.LatestRates(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, cached, rates)
}

func TestRateService_LatestRates_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockLatestLister(ctrl)
	cache := NewMockLatestRateCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
	lister.EXPECT().ListLatest(gomock.Any(), gomock.Nil()).Return(testRates(), nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Len(2)).Return(nil)

	svc := NewRateService(nil, nil, lister, cache, nil, nil)
	rates, err := svc.LatestRates(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "USD", rates[0].LetterCode)
	assert.Equal(t, "2024-01-15", rates[0].Date)
}

func TestRateService_LatestRates_FilteredBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockLatestLister(ctrl)
	cache := NewMockLatestRateCache(ctrl)

	codes := []string{"EUR"}
	lister.EXPECT().ListLatest(gomock.Any(), codes).Return(testRates()[1:], nil)

	svc := NewRateService(nil, nil, lister, cache, nil, nil)
	rates, err := svc.LatestRates(context.Background(), codes)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "EUR", rates[0].LetterCode)
}

func TestRateService_LatestRates_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockLatestLister(ctrl)
	lister.EXPECT().ListLatest(gomock.Any(), gomock.Nil()).Return(nil, nil)

	svc := NewRateService(nil, nil, lister, nil, nil, nil)
	rates, err := svc.LatestRates(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestRateService_LatestRates_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockLatestLister(ctrl)
	lister.EXPECT().ListLatest(gomock.Any(), gomock.Nil()).Return(nil, errors.New("db down"))

	svc := NewRateService(nil, nil, lister, nil, nil, nil)
	_, err := svc.LatestRates(context.Background(), nil)
	require.Error(t, err)
}
