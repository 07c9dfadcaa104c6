package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	testmock "github.com/lagoonlabs/liquidity-hub-api-service/tests/mocks"
)

const (
	testAddress      = "hub1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu"
	testEpochManager = "hub1epochmanageraddress"
	testBondDenom    = "ampwhale"
	testRewardDenom  = "uwhale"
)

type testDeps struct {
	db           *testmock.DBClient
	epochManager *testmock.EpochManagerClient
	amm          *testmock.AmmClient
	bank         *testmock.BankClient
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Bonding: config.BondingConfig{
			BondingAssets:       []string{testBondDenom, "bwhale"},
			RewardDenom:         testRewardDenom,
			UnbondingPeriod:     24 * time.Hour,
			GracePeriod:         21,
			GrowthRate:          "1",
			EpochManagerAddress: testEpochManager,
		},
	}
	if err := cfg.Bonding.Validate(); err != nil {
		t.Fatalf("invalid test bonding config: %v", err)
	}
	return cfg
}

func setupTestServices(t *testing.T) (*Services, *testDeps) {
	deps := &testDeps{
		db:           testmock.NewDBClient(t),
		epochManager: testmock.NewEpochManagerClient(t),
		amm:          testmock.NewAmmClient(t),
		bank:         testmock.NewBankClient(t),
	}
	var dbClient db.DBClient = deps.db
	services := NewWithDeps(testConfig(t), dbClient, &clients.Clients{
		EpochManager: deps.epochManager,
		Amm:          deps.amm,
		Bank:         deps.bank,
	})
	services.SetClock(func() time.Time { return time.Unix(1_000_000, 0) })
	return services, deps
}

// expectNothingClaimable satisfies the claim-before-position-change check
// for tests that exercise the mutation itself.
func expectNothingClaimable(deps *testDeps) {
	deps.db.On("FindRewardBuckets", mock.Anything).Return([]model.RewardBucketDocument{}, nil)
	deps.db.On("FindLastClaimedEpoch", mock.Anything, testAddress).
		Return(nil, &db.NotFoundError{Key: testAddress, Message: "address has never claimed"})
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).
		Return([]model.BondDocument{}, nil)
}
