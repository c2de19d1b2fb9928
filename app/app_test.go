package app

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/server"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	"github.com/multisig-factory/cosmos/testutil"
	"github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/factory"
	factorytypes "github.com/multisig-factory/cosmos/x/factory/types"
	"github.com/multisig-factory/cosmos/x/multisig"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

const testChainID = "multisig-test-1"

var genesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// setupApp starts a chain with each funded address holding 1000stake and
// returns a context on the first block
func setupApp(t *testing.T, funded ...sdk.AccAddress) (*App, sdk.Context) {
	t.Helper()

	app := New(
		log.NewNopLogger(),
		dbm.NewMemDB(),
		nil,
		true,
		simtestutil.AppOptionsMap{server.FlagInvCheckPeriod: 1},
		baseapp.SetChainID(testChainID),
	)

	genesis := app.DefaultGenesis()
	accounts := make(authtypes.GenesisAccounts, 0, len(funded))
	balances := make([]banktypes.Balance, 0, len(funded))
	for _, addr := range funded {
		accounts = append(accounts, authtypes.NewBaseAccountWithAddress(addr))
		balances = append(balances, banktypes.Balance{
			Address: addr.String(),
			Coins:   sdk.NewCoins(sdk.NewInt64Coin(multisigtypes.DefaultDenom, 1000)),
		})
	}
	genesis[authtypes.ModuleName] = app.AppCodec().MustMarshalJSON(authtypes.NewGenesisState(authtypes.DefaultParams(), accounts))
	bankGenesis := banktypes.DefaultGenesisState()
	bankGenesis.Balances = balances
	genesis[banktypes.ModuleName] = app.AppCodec().MustMarshalJSON(bankGenesis)

	require.NoError(t, ModuleBasics.ValidateGenesis(app.AppCodec(), app.TxConfig(), genesis))

	stateBytes, err := json.Marshal(genesis)
	require.NoError(t, err)

	_, err = app.InitChain(&abci.RequestInitChain{
		ChainId:         testChainID,
		Time:            genesisTime,
		AppStateBytes:   stateBytes,
		ConsensusParams: simtestutil.DefaultConsensusParams,
		InitialHeight:   1,
	})
	require.NoError(t, err)

	ctx := app.NewContextLegacy(false, cmtproto.Header{ChainID: testChainID, Height: 1, Time: genesisTime})
	return app, ctx
}

// deliver routes msg through the app's msg service router and decodes the
// single response into resp
func deliver(t *testing.T, app *App, ctx sdk.Context, msg sdk.Msg, resp proto.Message) {
	t.Helper()

	handler := app.MsgServiceRouter().Handler(msg)
	require.NotNil(t, handler, "no route for %s", sdk.MsgTypeURL(msg))

	res, err := handler(ctx, msg)
	require.NoError(t, err)
	require.Len(t, res.MsgResponses, 1)
	require.NoError(t, app.AppCodec().Unmarshal(res.MsgResponses[0].Value, resp))
}

func TestApp_RoutesEveryModuleMsg(t *testing.T) {
	app, _ := setupApp(t)

	for _, msg := range []sdk.Msg{
		&factorytypes.MsgCreateWallet{},
		&multisigtypes.MsgSubmitTransaction{},
		&multisigtypes.MsgConfirmTransaction{},
		&multisigtypes.MsgExecuteTransaction{},
		&multisigtypes.MsgDeposit{},
	} {
		require.NotNil(t, app.MsgServiceRouter().Handler(msg), sdk.MsgTypeURL(msg))
	}

	require.NoError(t, app.InterfaceRegistry().SigningContext().Validate())
}

func TestApp_SignersFromCodec(t *testing.T) {
	app, _ := setupApp(t)
	addrs := testutil.Addrs(2)

	msg := factorytypes.NewMsgCreateWallet(addrs[0].String(), multisigtypes.OwnersToBech32(addrs), 1)
	signers, _, err := app.AppCodec().GetMsgV1Signers(msg)
	require.NoError(t, err)
	require.Equal(t, [][]byte{addrs[0].Bytes()}, signers)

	deposit := multisigtypes.NewMsgDeposit(addrs[1].String(), addrs[0].String(), math.NewInt(1))
	signers, _, err = app.AppCodec().GetMsgV1Signers(deposit)
	require.NoError(t, err)
	require.Equal(t, [][]byte{addrs[1].Bytes()}, signers)
}

func TestApp_WalletLifecycle(t *testing.T) {
	addrs := testutil.Addrs(4)
	owners, recipient := addrs[:3], addrs[3]
	app, ctx := setupApp(t, owners[0])

	var created factorytypes.MsgCreateWalletResponse
	deliver(t, app, ctx, factorytypes.NewMsgCreateWallet(owners[0].String(), multisigtypes.OwnersToBech32(owners), 2), &created)
	require.Equal(t, uint64(0), created.Index)
	wallet := sdk.MustAccAddressFromBech32(created.Wallet)
	require.True(t, app.AccountKeeper.HasAccount(ctx, wallet))

	var deposited multisigtypes.MsgDepositResponse
	deliver(t, app, ctx, multisigtypes.NewMsgDeposit(owners[0].String(), created.Wallet, math.NewInt(600)), &deposited)
	require.Equal(t, int64(600), deposited.Balance.Int64())

	var submitted multisigtypes.MsgSubmitTransactionResponse
	deliver(t, app, ctx, multisigtypes.NewMsgSubmitTransaction(
		owners[1].String(), created.Wallet, recipient.String(), math.NewInt(250), []byte("invoice-7"),
	), &submitted)
	require.Equal(t, uint64(0), submitted.Index)

	var confirmed multisigtypes.MsgConfirmTransactionResponse
	deliver(t, app, ctx, multisigtypes.NewMsgConfirmTransaction(owners[0].String(), created.Wallet, submitted.Index), &confirmed)
	require.Equal(t, uint64(1), confirmed.Confirmations)
	require.False(t, confirmed.ThresholdMet)

	deliver(t, app, ctx, multisigtypes.NewMsgConfirmTransaction(owners[2].String(), created.Wallet, submitted.Index), &confirmed)
	require.Equal(t, uint64(2), confirmed.Confirmations)
	require.True(t, confirmed.ThresholdMet)

	var executed multisigtypes.MsgExecuteTransactionResponse
	deliver(t, app, ctx, multisigtypes.NewMsgExecuteTransaction(owners[1].String(), created.Wallet, submitted.Index), &executed)
	require.Equal(t, int64(350), executed.Balance.Int64())

	require.Equal(t, int64(400), app.BankKeeper.GetBalance(ctx, owners[0], multisigtypes.DefaultDenom).Amount.Int64())
	require.Equal(t, int64(350), app.BankKeeper.GetBalance(ctx, wallet, multisigtypes.DefaultDenom).Amount.Int64())
	require.Equal(t, int64(250), app.BankKeeper.GetBalance(ctx, recipient, multisigtypes.DefaultDenom).Amount.Int64())

	tx, found := app.MultisigKeeper.GetTransaction(ctx, wallet, submitted.Index)
	require.True(t, found)
	require.True(t, tx.Executed)

	handler := app.MsgServiceRouter().Handler(&multisigtypes.MsgExecuteTransaction{})
	_, err := handler(ctx, multisigtypes.NewMsgExecuteTransaction(owners[2].String(), created.Wallet, submitted.Index))
	require.ErrorIs(t, err, multisigtypes.ErrAlreadyExecuted)

	require.NotPanics(t, func() {
		_, err := app.EndBlocker(ctx)
		require.NoError(t, err)
	})

	_, err = app.FinalizeBlock(&abci.RequestFinalizeBlock{Height: 1, Time: genesisTime})
	require.NoError(t, err)
	_, err = app.Commit()
	require.NoError(t, err)

	exported, err := app.ExportAppStateAndValidators(false, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), exported.Height)

	var appState map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(exported.AppState, &appState))

	var factoryState factory.GenesisState
	app.AppCodec().MustUnmarshalJSON(appState[factorytypes.ModuleName], &factoryState)
	require.Equal(t, []string{created.Wallet}, factoryState.Deployed)
	require.NoError(t, factory.ValidateGenesis(&factoryState))

	var multisigState multisig.GenesisState
	app.AppCodec().MustUnmarshalJSON(appState[multisigtypes.ModuleName], &multisigState)
	require.Len(t, multisigState.Wallets, 1)
	require.Len(t, multisigState.Transactions, 1)
	require.True(t, multisigState.Transactions[0].Executed)
}

func TestApp_EndBlockerHaltsOnBrokenInvariant(t *testing.T) {
	addrs := testutil.Addrs(3)
	app, ctx := setupApp(t)

	var created factorytypes.MsgCreateWalletResponse
	deliver(t, app, ctx, factorytypes.NewMsgCreateWallet(addrs[0].String(), multisigtypes.OwnersToBech32(addrs[:2]), 2), &created)
	wallet := sdk.MustAccAddressFromBech32(created.Wallet)

	var submitted multisigtypes.MsgSubmitTransactionResponse
	deliver(t, app, ctx, multisigtypes.NewMsgSubmitTransaction(
		addrs[0].String(), created.Wallet, addrs[2].String(), math.ZeroInt(), nil,
	), &submitted)

	tx, found := app.MultisigKeeper.GetTransaction(ctx, wallet, submitted.Index)
	require.True(t, found)
	tx.Confirmations = append(tx.Confirmations, addrs[2].String())
	app.MultisigKeeper.SetTransaction(ctx, wallet, tx)

	require.Panics(t, func() {
		_, _ = app.EndBlocker(ctx)
	})

	app.invCheckPeriod = 0
	require.NotPanics(t, func() {
		_, _ = app.EndBlocker(ctx)
	})
}

func TestWalletActivityLogger_ReportsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	ctx := sdk.Context{}.WithLogger(log.NewLogger(&buf, log.OutputJSONOption()))
	activity := walletActivityLogger{}

	require.NoError(t, activity.AfterDeposit(ctx, types.Deposited{
		Wallet:  testutil.Addrs(1)[0].String(),
		Amount:  math.NewInt(5),
		Balance: math.NewInt(5),
	}))
	require.NoError(t, activity.OnTransferReceived(ctx, testutil.Addrs(1)[0], testutil.Addrs(2)[1], sdk.NewCoins(), []byte{1, 2}))

	out := buf.String()
	require.Contains(t, out, "wallet deposit")
	require.Contains(t, out, `"module":"x/multisig"`)
	require.Contains(t, out, "transfer delivered")
}
