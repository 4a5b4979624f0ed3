package llm

// ExtractionPrompt instructs the vision model to pull invoice fields as
// strict JSON. Description and SKU-code accuracy matter most downstream:
// the description column feeds the catalog matcher verbatim.
const ExtractionPrompt = `Extract data from this TAX INVOICE document following these strict rules:
1. Identify header fields using common invoice terminology:
   - Order Number -> "order_no"
   - Invoice Number -> "invoice_no"
   - Delivery Note Number -> "delivery_note"
   - Vehicle Number -> "vehicle_no"
   - Transporter Name -> "transporter"
   - Customer Name -> "dealer_name"
   - Company Name (Vendor) -> "company_name"
   - Transaction Type (Mode of Payment) -> "transaction_type"
   - Transaction Date -> "transaction_date"
   - Due Date -> "due_date"
   - Invoice Date -> "invoice_date"

2. For product listings:
   - Extract ALL product descriptions from the "Description" column into "sku". Accuracy here is critical.
   - Extract product codes separately into "sku_code".
   - Extract corresponding numbers from the "Quantity", "Shortage", "Breakage", "Leakage", "Batch", "SNO", "Rate", "Discount", "MRP", "VAT", "HSCode", "AltQty", and "Unit" columns.
   - Maintain array order consistency across all product-related fields.

3. Date formatting:
   - Convert any date format to YYYY-MM-DD.
   - Prefer the invoice date over the document creation date.

4. Output requirements:
   - Return STRICT JSON matching the provided schema, using those EXACT field names.
   - Return empty strings/arrays for missing data.
   - ABSOLUTELY NO ADDITIONAL TEXT OR MARKDOWN.`
